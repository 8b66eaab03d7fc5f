package main

// Composer holds the theme shown to one visitor and flips it on request.
type Composer struct {
	resolver *Resolver
	theme    Theme
}

func NewComposer(r *Resolver) *Composer {
	return &Composer{resolver: r, theme: r.Resolve()}
}

func (c *Composer) Theme() Theme { return c.theme }

// Toggle flips between light and dark, persisting the new theme before
// making it current.
func (c *Composer) Toggle() Theme {
	next := c.theme.Opposite()
	c.resolver.Persist(next)
	c.theme = next
	return next
}

// Palette is every themed color on the page.
type Palette struct {
	Background string
	Text       string
	Divider    string
	IconTint   string
	Scrollbar  string
}

// Page is the view model for the portfolio templates.
type Page struct {
	ThemeName string
	ToggleTo  string
	Palette   Palette
	Content   Content
}

// Compose projects a theme and content into a page. It has no other inputs.
func Compose(theme Theme, content Content) Page {
	return Page{
		ThemeName: theme.Name(),
		ToggleTo:  theme.Opposite().Name(),
		Palette: Palette{
			Background: theme.Background,
			Text:       theme.Primary,
			Divider:    theme.Primary,
			IconTint:   theme.Primary,
			Scrollbar:  theme.Primary,
		},
		Content: content,
	}
}
