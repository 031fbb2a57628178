// Package categories holds the fixed catalog of spending categories.
//
// The catalog is static: items reference categories by ID, and every
// unknown value is coerced to Other when it enters the system, both
// from user input and from stored records.
package categories

// ID identifies one of the fixed spending categories.
type ID string

const (
	Housing       ID = "Housing"
	Transport     ID = "Transport"
	Food          ID = "Food"
	Health        ID = "Health"
	Education     ID = "Education"
	Leisure       ID = "Leisure"
	Communication ID = "Communication"
	Personal      ID = "Personal"
	Other         ID = "Other"
)

// Definition holds the presentation metadata for one category.
type Definition struct {
	Icon       string // icon name for list rows
	ColorClass string // badge color classes
	ChartHex   string // chart slice color
}

// order is the display order of the catalog. Other is always last.
var order = []ID{
	Housing,
	Transport,
	Food,
	Health,
	Education,
	Leisure,
	Communication,
	Personal,
	Other,
}

var definitions = map[ID]Definition{
	Housing:       {Icon: "home", ColorClass: "bg-blue-100 text-blue-700 border-blue-200", ChartHex: "#3b82f6"},
	Transport:     {Icon: "car", ColorClass: "bg-indigo-100 text-indigo-700 border-indigo-200", ChartHex: "#6366f1"},
	Food:          {Icon: "utensils", ColorClass: "bg-green-100 text-green-700 border-green-200", ChartHex: "#22c55e"},
	Health:        {Icon: "heart-pulse", ColorClass: "bg-red-100 text-red-700 border-red-200", ChartHex: "#ef4444"},
	Education:     {Icon: "graduation-cap", ColorClass: "bg-yellow-100 text-yellow-700 border-yellow-200", ChartHex: "#eab308"},
	Leisure:       {Icon: "gamepad-2", ColorClass: "bg-purple-100 text-purple-700 border-purple-200", ChartHex: "#a855f7"},
	Communication: {Icon: "radio", ColorClass: "bg-lime-100 text-lime-700 border-lime-200", ChartHex: "#00ff04"},
	Personal:      {Icon: "user", ColorClass: "bg-pink-100 text-pink-700 border-pink-200", ChartHex: "#ec4899"},
	Other:         {Icon: "circle-help", ColorClass: "bg-gray-100 text-gray-700 border-gray-200", ChartHex: "#6b7280"},
}

// All returns the catalog's categories in display order.
func All() []ID {
	return append([]ID(nil), order...)
}

// Lookup returns the definition for id. Unknown IDs get the Other
// definition, which always exists.
func Lookup(id ID) Definition {
	if def, ok := definitions[id]; ok {
		return def
	}
	return definitions[Other]
}

// Normalize coerces any category value to a catalog ID. Values that
// are not part of the catalog become Other. This is a permanent
// normalization rule, not a validation error.
func Normalize(value string) ID {
	if _, ok := definitions[ID(value)]; ok {
		return ID(value)
	}
	return Other
}
