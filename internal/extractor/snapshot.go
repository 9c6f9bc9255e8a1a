package extractor

// PageSnapshot is the raw page state read once inside the rendered page.
type PageSnapshot struct {
	// Scripts holds the text content of every non-empty script element.
	Scripts []string `json:"scripts"`
	// Globals maps a probed window property to its serialized value.
	Globals map[string]string `json:"globals"`
	// GlobalErrors lists probed names whose access or serialization threw.
	GlobalErrors []string `json:"globalErrors"`
	// Attributes holds trimmed stream attribute values containing the manifest marker.
	Attributes []string `json:"attributes"`
	// HTML is the serialized document.
	HTML string `json:"html"`
}

// SnapshotOptions configures the in-page read.
type SnapshotOptions struct {
	PlayerGlobals    []string
	StreamAttributes []string
}

// snapshotScript runs in the page. Each global is probed on its own so one
// throwing getter or circular value only skips that name.
const snapshotScript = `(names, attrs, marker) => {
	const snapshot = { scripts: [], globals: {}, globalErrors: [], attributes: [], html: '' };

	for (const el of document.querySelectorAll('script')) {
		const text = el.textContent || '';
		if (text) snapshot.scripts.push(text);
	}

	for (const name of names) {
		try {
			const value = window[name];
			if (value === undefined || value === null) continue;
			let text;
			if (typeof value === 'string') {
				text = value;
			} else {
				const seen = new WeakSet();
				text = JSON.stringify(value, (key, v) => {
					if (typeof v === 'object' && v !== null) {
						if (seen.has(v)) return undefined;
						seen.add(v);
					}
					return v;
				});
			}
			if (text === undefined) text = String(value);
			snapshot.globals[name] = text;
		} catch (e) {
			snapshot.globalErrors.push(name);
		}
	}

	for (const el of document.querySelectorAll('*')) {
		for (const attr of attrs) {
			const value = (el.getAttribute(attr) || '').trim();
			if (value.includes(marker)) snapshot.attributes.push(value);
		}
	}

	snapshot.html = document.documentElement ? document.documentElement.outerHTML : '';
	return snapshot;
}`
