// Package metrics holds the fixed sizes the layout is computed from.
package metrics

// Lines of chrome above the main body.
const (
	HeaderLines = 2
	ErrorLines  = 1
)

// Sidebar chrome.
const (
	SidebarTitleLines       = 2
	SidebarRightBorderWidth = 1
)

// HeaderWidthPadding is kept free beside the header text.
const HeaderWidthPadding = 7

// List rows.
const (
	ItemRightPadding  = 1
	ItemSafetyPadding = 1
)
