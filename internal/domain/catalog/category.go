package catalog

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

func NewCategory(name, icon, color string) (*Category, error) {
	if name == "" {
		return nil, ErrMissingField
	}
	return &Category{
		Name:  name,
		Icon:  icon,
		Color: color,
	}, nil
}
