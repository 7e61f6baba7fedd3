package domain

const (
	DefaultListLimit = 10
	MaxListLimit     = 100
)

// ListParams carries pagination, ordering and equality filters for list reads
type ListParams struct {
	Limit   int
	Offset  int
	OrderBy string
	Filters map[string]string
}

// Normalize applies the default limit and clamps bad values
func (p ListParams) Normalize() ListParams {
	if p.Limit <= 0 {
		p.Limit = DefaultListLimit
	}
	if p.Limit > MaxListLimit {
		p.Limit = MaxListLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
