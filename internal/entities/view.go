package entities

// FilterAll is the "no constraint" value for every dropdown filter.
// The price bounds use an empty string instead.
const FilterAll = "all"

// Filters is the fine-grained filter selection. Sentinel values mean the
// predicate always passes, so the zero state returned by DefaultFilters
// leaves the order list untouched.
type Filters struct {
	CustomerName  string
	CampName      string
	RoomNumber    string
	Service       string
	PaymentStatus string
	PickupMethod  string
	MinPrice      string
	MaxPrice      string
}

func DefaultFilters() Filters {
	return Filters{
		CustomerName:  FilterAll,
		CampName:      FilterAll,
		RoomNumber:    FilterAll,
		Service:       FilterAll,
		PaymentStatus: FilterAll,
		PickupMethod:  FilterAll,
		MinPrice:      "",
		MaxPrice:      "",
	}
}

type ViewMode string

const (
	ViewToday     ViewMode = "today"
	ViewAll       ViewMode = "all"
	ViewPending   ViewMode = "pending"
	ViewCompleted ViewMode = "completed"
	ViewCancelled ViewMode = "cancelled"
)

func (m ViewMode) String() string {
	return string(m)
}

func IsValidViewMode(mode string) bool {
	switch ViewMode(mode) {
	case ViewToday, ViewAll, ViewPending, ViewCompleted, ViewCancelled:
		return true
	default:
		return false
	}
}

// FilterOptions holds the distinct values found in the current order set,
// used to populate the dashboard's filter dropdowns.
type FilterOptions struct {
	CustomerNames []string
	CampNames     []string
	RoomNumbers   []string
	Services      []string
	PickupMethods []string
}

// OrderView is the display-ready projection the operator sees: the filtered
// list plus the view state that produced it.
type OrderView struct {
	Orders        []Order
	Mode          ViewMode
	Applied       Filters
	Pending       Filters
	ShowFilters   bool
	HighlightedID int64
	TotalCount    int
	FilteredCount int
}
