package inky

// Config holds converter settings read from the environment.
type Config struct {
	ColumnCount int `env:"INKY_COLUMN_COUNT" envDefault:"12"`
	MaxSteps    int `env:"INKY_MAX_STEPS" envDefault:"10000"`

	TagColumns       string `env:"INKY_TAG_COLUMNS" envDefault:"columns"`
	TagRow           string `env:"INKY_TAG_ROW" envDefault:"row"`
	TagButton        string `env:"INKY_TAG_BUTTON" envDefault:"button"`
	TagContainer     string `env:"INKY_TAG_CONTAINER" envDefault:"container"`
	TagBorderedTable string `env:"INKY_TAG_BORDEREDTABLE" envDefault:"borderedtable"`
	TagInky          string `env:"INKY_TAG_INKY" envDefault:"inky"`
	TagBlockGrid     string `env:"INKY_TAG_BLOCK_GRID" envDefault:"block-grid"`
	TagMenu          string `env:"INKY_TAG_MENU" envDefault:"menu"`
	TagMenuItem      string `env:"INKY_TAG_MENU_ITEM" envDefault:"item"`
	TagCenter        string `env:"INKY_TAG_CENTER" envDefault:"center"`
	TagCallout       string `env:"INKY_TAG_CALLOUT" envDefault:"callout"`
}

// Registry builds the component registry described by the tag settings.
func (c Config) Registry() (Registry, error) {
	return NewRegistry(map[Component]string{
		Columns:       c.TagColumns,
		Row:           c.TagRow,
		Button:        c.TagButton,
		Container:     c.TagContainer,
		BorderedTable: c.TagBorderedTable,
		Marker:        c.TagInky,
		BlockGrid:     c.TagBlockGrid,
		Menu:          c.TagMenu,
		MenuItem:      c.TagMenuItem,
		Center:        c.TagCenter,
		Callout:       c.TagCallout,
	})
}

// NewFromConfig creates a converter from cfg. Extra options are applied last.
func NewFromConfig(cfg Config, opts ...Option) (*Inky, error) {
	reg, err := cfg.Registry()
	if err != nil {
		return nil, err
	}
	base := []Option{
		WithRegistry(reg),
		WithColumnCount(cfg.ColumnCount),
		WithMaxSteps(cfg.MaxSteps),
	}
	return New(append(base, opts...)...), nil
}
