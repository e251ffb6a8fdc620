package domain

// MenuSubItem is a secondary entry shown under a radial menu sector
type MenuSubItem struct {
	Label    string
	Callback func()
}

// MenuItem is one radial menu sector. SubItems carries at most two entries.
type MenuItem struct {
	Key      string
	Label    string
	Callback func()
	SubItems []MenuSubItem
}
