package model

// GlobalState is document-wide configuration shared by every viewer.
type GlobalState struct {
	Name                   *string
	ViewBackgroundColor    string
	MainScope              string
	ScopeExponentThreshold int32
	LinearUnit             LinearUnit
	PruningLevel           PruningLevel
}

// LocalState is the per-user editor state persisted with the document.
type LocalState struct {
	Scope   string
	ScrollX float64
	ScrollY float64
	Zoom    float64

	IsBindingEnabled bool

	CurrentItemStroke        *ElementStroke
	CurrentItemBackground    *ElementBackground
	CurrentItemOpacity       float64
	CurrentItemFontFamily    string
	CurrentItemFontSize      float64
	CurrentItemTextAlign     TextAlign
	CurrentItemRoundness     float64
	CurrentItemStartLineHead *LineHead
	CurrentItemEndLineHead   *LineHead

	PenMode                bool
	ViewModeEnabled        bool
	ObjectsSnapModeEnabled bool
	GridModeEnabled        bool
	OutlineModeEnabled     bool
	ManualSaveMode         bool
}
