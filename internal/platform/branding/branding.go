// Package branding holds product naming shared by every rendered page.
package branding

// AppName is the console's display name.
const AppName = "DoubtsClear Admin"
