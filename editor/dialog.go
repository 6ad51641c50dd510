package editor

// Dialog is the modal dialog currently open in the editor: either
// *NewMapDialog or *TileSizeDialog.
type Dialog interface {
	Title() string
	dialog()
}

// NewMapDialog asks for the size of a fresh map.
type NewMapDialog struct {
	Width, Height int
}

func (*NewMapDialog) Title() string { return "New Map" }
func (*NewMapDialog) dialog()       {}

// TileSizeDialog asks for the tile size of a sprite sheet before loading it.
type TileSizeDialog struct {
	Path                  string
	TileWidth, TileHeight int
}

func (*TileSizeDialog) Title() string { return "Sprite Tile Size (pixels)" }
func (*TileSizeDialog) dialog()       {}
