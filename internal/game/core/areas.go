package core

// Area is a named bonus region. Areas are static reference data carried for
// downstream consumers; attack resolution does not consult them.
type Area struct {
	Name        string
	Bonus       int
	Territories []string
}

var areas = []Area{
	{
		Name:  "North America",
		Bonus: 5,
		Territories: []string{
			"Alaska", "Northwest Territories", "Greenland", "Alberta",
			"Ontario", "Quebec", "Western United States",
			"Eastern United States", "Mexico",
		},
	},
	{
		Name:        "South America",
		Bonus:       2,
		Territories: []string{"Venezuala", "Brazil", "Peru", "Argentina"},
	},
	{
		Name:  "Africa",
		Bonus: 3,
		Territories: []string{
			"North Africa", "Egypt", "East Africa", "Congo",
			"South Africa", "Madagascar",
		},
	},
	{
		Name:  "Europe",
		Bonus: 5,
		Territories: []string{
			"Iceland", "Great Britain", "Scandanavia", "Ukraine",
			"Northern Europe", "Western Europe", "Southern Europe",
		},
	},
	{
		Name:  "Asia",
		Bonus: 7,
		Territories: []string{
			"Middle East", "Afghanistan", "India", "South East Asia",
			"China", "Mongolia", "Japan", "Kamchatka", "Irkutsk",
			"Yakutsk", "Siberia", "Ural",
		},
	},
	{
		Name:  "Australia",
		Bonus: 2,
		Territories: []string{
			"Indonesia", "New Guinea", "Eastern Australia",
			"Western Australia",
		},
	},
}

// Areas returns the bonus regions. The returned slice is shared and must not
// be modified.
func (b *Board) Areas() []Area { return areas }
