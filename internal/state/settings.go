package state

func (c *Container) Settings() Settings { return c.snap.Settings.clone() }

func (c *Container) SetTheme(t Theme) {
	c.snap.Settings.Theme = t
	c.commit()
}

func (c *Container) SetBrandColors(colors [3]string) {
	c.snap.Settings.BrandColors = colors
	c.commit()
}

func (c *Container) SetWidget(w Widget, on bool) {
	widgets := make(map[Widget]bool, len(c.snap.Settings.Widgets)+1)
	for k, v := range c.snap.Settings.Widgets {
		widgets[k] = v
	}
	widgets[w] = on
	c.snap.Settings.Widgets = widgets
	c.commit()
}

// WidgetEnabled reports whether w is switched on.
func (c *Container) WidgetEnabled(w Widget) bool {
	return c.snap.Settings.Widgets[w]
}
