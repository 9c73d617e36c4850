package out

import (
	"pitwall/internal/modules/records/domain"
	recordsout "pitwall/internal/modules/records/port/out"
)

// StaticTrackCatalog is a small built-in subset of the track dataset, enough to
// label records. Unknown ids are expected and handled by callers.
type StaticTrackCatalog struct {
	byID  map[string]domain.Track
	order []domain.Track
}

func NewStaticTrackCatalog() recordsout.TrackCatalog {
	tracks := []domain.Track{
		{ID: "monaco", Name: "Circuit de Monaco", Country: "Monaco"},
		{ID: "silverstone", Name: "Silverstone Circuit", Country: "United Kingdom"},
		{ID: "spa", Name: "Circuit de Spa-Francorchamps", Country: "Belgium"},
		{ID: "monza", Name: "Autodromo Nazionale Monza", Country: "Italy"},
		{ID: "suzuka", Name: "Suzuka International Racing Course", Country: "Japan"},
		{ID: "interlagos", Name: "Autódromo José Carlos Pace", Country: "Brazil"},
		{ID: "cota", Name: "Circuit of the Americas", Country: "United States"},
		{ID: "nurburgring", Name: "Nürburgring", Country: "Germany"},
	}
	byID := make(map[string]domain.Track, len(tracks))
	for _, t := range tracks {
		byID[t.ID] = t
	}
	return &StaticTrackCatalog{byID: byID, order: tracks}
}

func (c *StaticTrackCatalog) Lookup(trackID string) (domain.Track, bool) {
	t, ok := c.byID[trackID]
	return t, ok
}

func (c *StaticTrackCatalog) List() []domain.Track {
	out := make([]domain.Track, len(c.order))
	copy(out, c.order)
	return out
}
