// Package sanitizer normalizes raw text before it is validated.
//
// Submissions arrive from forms and JSON bodies with stray whitespace,
// control characters and mixed Unicode forms. The helpers here clean those
// up so that length checks count what a reader sees:
//
//	clean := sanitizer.Text("  Café\x00 ")  // "Café"
//
// Functions are pure and can be chained with Apply or Compose.
package sanitizer
