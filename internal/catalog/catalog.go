// Package catalog defines the built-in dashboard items and their default order.
package catalog

// Item is a dashboard card. ID is stable and never changes; Component names
// the render surface bound to the card.
type Item struct {
	ID        string
	Title     string
	Content   string
	Component string
}

var defaults = []Item{
	{ID: "m-0", Title: "Schedule", Content: "Shift schedule", Component: "Schedule"},
	{ID: "m-1", Title: "Live Transcript", Content: "Call transcript", Component: "Transcript"},
	{ID: "m-2", Title: "Status", Content: "Agent status", Component: "StatusSelector"},
	{ID: "m-3", Title: "KPIs", Content: "Key metrics", Component: "KPIs"},
	{ID: "m-4", Title: "Queue", Content: "Queue overview", Component: "QueueOverview"},
	{ID: "m-5", Title: "Agents", Content: "Agent list", Component: "QueueList"},
}

// Default returns a copy of the built-in items in their default order.
func Default() []Item {
	items := make([]Item, len(defaults))
	copy(items, defaults)
	return items
}

// IDs returns the ids of items, preserving order.
func IDs(items []Item) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

// ByID indexes items by id.
func ByID(items []Item) map[string]Item {
	m := make(map[string]Item, len(items))
	for _, it := range items {
		m[it.ID] = it
	}
	return m
}
