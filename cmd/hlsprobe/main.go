// Package main provides the hlsprobe command line.
//
// hlsprobe renders a web page in a headless browser and reports the HLS
// manifest (.m3u8) links it loads or embeds.
//
// Usage:
//
//	hlsprobe serve
//	hlsprobe extract <url>
//	hlsprobe scan <file.html>
package main

func main() {
	Execute()
}
