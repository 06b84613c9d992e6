package domain

// Preferences is the slice of UI state that survives restarts. Everything
// else the store holds (products, inventory, errors) is volatile and
// re-fetched on load.
type Preferences struct {
	SidebarOpen bool `json:"sidebarOpen"`
	DarkMode    bool `json:"darkMode"`
	CurrentPage int  `json:"currentPage"`
}
