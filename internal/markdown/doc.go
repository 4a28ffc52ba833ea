// Package markdown renders markup into HTML and reads locally authored pages
// (front matter plus a markup body) from any fs.FS.
package markdown
