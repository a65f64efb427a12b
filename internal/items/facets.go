package items

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

// FacetsFor returns the stored filter facets for a container. A container
// that has never been refreshed yields empty facets, not an error; the
// filter dialog simply shows nothing to pick yet.
func (r *Repository) FacetsFor(parentID string) (*Facets, error) {
	f := &Facets{
		Genres:          []string{},
		OfficialRatings: []string{},
		Tags:            []string{},
		Years:           []int{},
		StudioIDs:       []string{},
	}
	// pq scans integer arrays as []int64 only; convert after the read.
	var years []int64
	var refreshed time.Time
	err := r.db.QueryRow(
		`SELECT genres, official_ratings, tags, years, studio_ids, refreshed_at
		 FROM item_facets WHERE parent_id = $1`, parentID,
	).Scan(pq.Array(&f.Genres), pq.Array(&f.OfficialRatings), pq.Array(&f.Tags),
		pq.Array(&years), pq.Array(&f.StudioIDs), &refreshed)
	if err == sql.ErrNoRows {
		return f, nil
	}
	if err != nil {
		return nil, err
	}
	f.Years = intsFromInt64(years)
	f.RefreshedAt = &refreshed
	return f, nil
}

func intsFromInt64(in []int64) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}

// RefreshFacets recomputes the distinct filter values for a container's
// children and upserts them. Runs from the background queue, not per-request.
func (r *Repository) RefreshFacets(parentID string) error {
	var genres, ratings, tags, studios []string
	var years []int64

	err := r.db.QueryRow(`
		SELECT
			COALESCE(ARRAY(SELECT DISTINCT g FROM library_items i2, unnest(i2.genres) g
				WHERE i2.parent_id = $1 ORDER BY g), '{}'),
			COALESCE(ARRAY(SELECT DISTINCT i2.official_rating FROM library_items i2
				WHERE i2.parent_id = $1 AND i2.official_rating IS NOT NULL ORDER BY 1), '{}'),
			COALESCE(ARRAY(SELECT DISTINCT t FROM library_items i2, unnest(i2.tags) t
				WHERE i2.parent_id = $1 ORDER BY t), '{}'),
			COALESCE(ARRAY(SELECT DISTINCT i2.year FROM library_items i2
				WHERE i2.parent_id = $1 AND i2.year IS NOT NULL ORDER BY 1), '{}'),
			COALESCE(ARRAY(SELECT DISTINCT s FROM library_items i2, unnest(i2.studio_ids) s
				WHERE i2.parent_id = $1 ORDER BY s), '{}')`,
		parentID,
	).Scan(pq.Array(&genres), pq.Array(&ratings), pq.Array(&tags), pq.Array(&years), pq.Array(&studios))
	if err != nil {
		return err
	}

	_, err = r.db.Exec(`
		INSERT INTO item_facets (parent_id, genres, official_ratings, tags, years, studio_ids, refreshed_at)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP)
		ON CONFLICT (parent_id) DO UPDATE
		SET genres = $2, official_ratings = $3, tags = $4, years = $5, studio_ids = $6,
		    refreshed_at = CURRENT_TIMESTAMP`,
		parentID, pq.Array(genres), pq.Array(ratings), pq.Array(tags), pq.Array(years), pq.Array(studios))
	return err
}

// ListContainerIDs returns the ids of all items that have children, i.e.
// every container whose facets are worth refreshing.
func (r *Repository) ListContainerIDs() ([]string, error) {
	rows, err := r.db.Query(
		`SELECT DISTINCT parent_id FROM library_items WHERE parent_id IS NOT NULL ORDER BY parent_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
