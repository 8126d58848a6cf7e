// Package icons maps the console's navigation icons to Lucide symbols and
// serves the inline SVG sprite that pages reference with <use>.
package icons
