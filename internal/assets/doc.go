// Package assets provides the stylesheets shipped with generated pages.
//
// Styles are embedded at compile time under styles/{name}.css. The
// driver writes one of them into the extras directory when the page
// stylesheet does not exist yet, so freshly generated pages render with
// classes used by the built-in tags (subtitle, bold, italic, underlined,
// secondary).
//
// Style names are validated to prevent path traversal.
package assets
