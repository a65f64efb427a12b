package items

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/davidhaley/medley/internal/views"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const itemColumns = `id, parent_id, item_type, name, sort_name, year, runtime_minutes,
	is_hd, is_4k, is_3d,
	has_subtitles, has_trailer, has_special_feature, has_theme_song, has_theme_video,
	season_number, is_missing, is_unaired,
	series_status, video_type, status, official_rating,
	genres, tags, studio_ids`

// buildClauses turns an ItemQuery into WHERE and ORDER BY fragments with
// numbered placeholders. paramStart is the next free parameter index
// (2 when $1 is the parent id).
func buildClauses(q views.ItemQuery, paramStart int) (string, string, []interface{}) {
	var wheres []string
	var args []interface{}
	p := paramStart

	arg := func(v interface{}) int {
		args = append(args, v)
		idx := p
		p++
		return idx
	}

	if q.NameStartsWith != "" {
		wheres = append(wheres, fmt.Sprintf(`i.sort_name LIKE $%d || '%%'`, arg(q.NameStartsWith)))
	}
	if q.NameLessThan != "" {
		wheres = append(wheres, fmt.Sprintf(`i.sort_name < $%d`, arg(q.NameLessThan)))
	}

	if q.Video.IsHD != nil {
		wheres = append(wheres, fmt.Sprintf(`i.is_hd = $%d`, arg(*q.Video.IsHD)))
	}
	if q.Video.Is4K != nil {
		wheres = append(wheres, fmt.Sprintf(`i.is_4k = $%d`, arg(*q.Video.Is4K)))
	}
	if q.Video.Is3D != nil {
		wheres = append(wheres, fmt.Sprintf(`i.is_3d = $%d`, arg(*q.Video.Is3D)))
	}

	features := []struct {
		col string
		val *bool
	}{
		{"has_subtitles", q.Features.HasSubtitles},
		{"has_trailer", q.Features.HasTrailer},
		{"has_special_feature", q.Features.HasSpecialFeature},
		{"has_theme_song", q.Features.HasThemeSong},
		{"has_theme_video", q.Features.HasThemeVideo},
	}
	for _, f := range features {
		if f.val != nil {
			wheres = append(wheres, fmt.Sprintf(`i.%s = $%d`, f.col, arg(*f.val)))
		}
	}

	if q.Episode.ParentIndexNumber != nil {
		wheres = append(wheres, fmt.Sprintf(`i.season_number = $%d`, arg(*q.Episode.ParentIndexNumber)))
	}
	if q.Episode.IsMissing != nil {
		wheres = append(wheres, fmt.Sprintf(`i.is_missing = $%d`, arg(*q.Episode.IsMissing)))
	}
	if q.Episode.IsUnaired != nil {
		wheres = append(wheres, fmt.Sprintf(`i.is_unaired = $%d`, arg(*q.Episode.IsUnaired)))
	}

	if len(q.SeriesStatus) > 0 {
		wheres = append(wheres, fmt.Sprintf(`i.series_status = ANY($%d)`, arg(pq.Array(q.SeriesStatus))))
	}
	if len(q.VideoTypes) > 0 {
		wheres = append(wheres, fmt.Sprintf(`i.video_type = ANY($%d)`, arg(pq.Array(q.VideoTypes))))
	}
	if len(q.Status) > 0 {
		wheres = append(wheres, fmt.Sprintf(`i.status = ANY($%d)`, arg(pq.Array(q.Status))))
	}
	if len(q.Genres) > 0 {
		wheres = append(wheres, fmt.Sprintf(`i.genres && $%d`, arg(pq.Array(q.Genres))))
	}
	if len(q.OfficialRatings) > 0 {
		wheres = append(wheres, fmt.Sprintf(`i.official_rating = ANY($%d)`, arg(pq.Array(q.OfficialRatings))))
	}
	if len(q.Tags) > 0 {
		wheres = append(wheres, fmt.Sprintf(`i.tags && $%d`, arg(pq.Array(q.Tags))))
	}
	if len(q.Years) > 0 {
		wheres = append(wheres, fmt.Sprintf(`i.year = ANY($%d)`, arg(pq.Array(q.Years))))
	}
	if len(q.StudioIDs) > 0 {
		wheres = append(wheres, fmt.Sprintf(`i.studio_ids && $%d`, arg(pq.Array(q.StudioIDs))))
	}

	whereSQL := ""
	if len(wheres) > 0 {
		whereSQL = " AND " + strings.Join(wheres, " AND ")
	}

	return whereSQL, buildOrder(q), args
}

// buildOrder maps the sort-field identifiers onto columns. Unknown fields
// are skipped; an empty result falls back to the name sort.
func buildOrder(q views.ItemQuery) string {
	dir := "ASC"
	if q.SortOrder == views.SortDescending {
		dir = "DESC"
	}

	var cols []string
	for _, field := range q.SortBy {
		switch field {
		case views.SortByName:
			cols = append(cols, "i.sort_name "+dir)
		case views.SortByYear:
			cols = append(cols, "i.year "+dir+" NULLS LAST")
		case views.SortByDateCreated:
			cols = append(cols, "i.created_at "+dir)
		case views.SortByRuntime:
			cols = append(cols, "i.runtime_minutes "+dir+" NULLS LAST")
		case views.SortByRandom:
			cols = append(cols, "RANDOM()")
		}
	}
	if len(cols) == 0 {
		cols = append(cols, "i.sort_name "+dir)
	}
	return " ORDER BY " + strings.Join(cols, ", ")
}

// selectColumns extends the base column list with the query's requested
// optional fields, NULL-padding the ones not asked for so scanning stays
// uniform.
func selectColumns(fields []string) string {
	want := make(map[string]bool, len(fields))
	for _, f := range fields {
		want[f] = true
	}

	cols := prefixColumns("i.")
	if want[views.FieldSyncInfo] {
		cols += ", i.sync_enabled"
	} else {
		cols += ", NULL::boolean"
	}
	if want[views.FieldMediaSourceCount] {
		cols += ", i.media_source_count"
	} else {
		cols += ", NULL::integer"
	}
	if want[views.FieldDateCreated] {
		cols += ", i.created_at"
	} else {
		cols += ", NULL::timestamptz"
	}
	if want[views.FieldPrimaryAspectRatio] {
		cols += ", i.primary_aspect_ratio"
	} else {
		cols += ", NULL::double precision"
	}
	return cols
}

func prefixColumns(prefix string) string {
	parts := strings.Split(itemColumns, ",")
	for i, p := range parts {
		parts[i] = prefix + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}

// parentClause returns the container predicate plus the index of the next
// free placeholder. An absent parent selects the top-level rows, whose
// parent_id is NULL; "" is not a valid uuid parameter.
func parentClause(parentID string) (string, []interface{}, int) {
	if parentID == "" {
		return "i.parent_id IS NULL", nil, 1
	}
	return "i.parent_id = $1", []interface{}{parentID}, 2
}

// List runs an ItemQuery against the children of a container and returns one
// page plus the unpaged total.
func (r *Repository) List(parentID string, q views.ItemQuery) (*QueryResult, error) {
	parentSQL, baseArgs, paramStart := parentClause(parentID)
	whereSQL, orderSQL, filterArgs := buildClauses(q, paramStart)

	countQuery := `SELECT COUNT(*) FROM library_items i WHERE ` + parentSQL + whereSQL
	countArgs := append(append([]interface{}{}, baseArgs...), filterArgs...)

	var total int
	if err := r.db.QueryRow(countQuery, countArgs...).Scan(&total); err != nil {
		return nil, err
	}

	query := `SELECT ` + selectColumns(q.Fields) + `
		FROM library_items i
		WHERE ` + parentSQL + whereSQL + orderSQL

	pOffset := len(filterArgs) + paramStart
	allArgs := append(append([]interface{}{}, baseArgs...), filterArgs...)
	allArgs = append(allArgs, q.StartIndex)
	query += fmt.Sprintf(` OFFSET $%d`, pOffset)
	if q.Limit != nil {
		query += fmt.Sprintf(` LIMIT $%d`, pOffset+1)
		allArgs = append(allArgs, *q.Limit)
	}

	rows, err := r.db.Query(query, allArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := &QueryResult{Items: []Item{}, TotalRecordCount: total}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		result.Items = append(result.Items, *item)
	}
	return result, rows.Err()
}

// GetByID returns a single item, used to populate the container header and
// its play/queue/shuffle affordances.
func (r *Repository) GetByID(id string) (*Item, error) {
	query := `SELECT ` + selectColumns(nil) + ` FROM library_items i WHERE i.id = $1`
	item, err := scanItem(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("item not found")
	}
	return item, err
}

// LetterIndex returns the cumulative offset for each starting letter of the
// container's children, with non-alphabetic names bucketed under '#'.
func (r *Repository) LetterIndex(parentID string) ([]LetterCount, error) {
	parentSQL, baseArgs, _ := parentClause(parentID)
	rows, err := r.db.Query(`
		SELECT
			CASE WHEN UPPER(LEFT(i.sort_name, 1)) BETWEEN 'A' AND 'Z'
			     THEN UPPER(LEFT(i.sort_name, 1))
			     ELSE '#' END AS letter,
			COUNT(*) AS cnt
		FROM library_items i
		WHERE `+parentSQL+`
		GROUP BY letter ORDER BY letter`, baseArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []LetterCount
	cumOffset := 0
	for rows.Next() {
		var lc LetterCount
		if err := rows.Scan(&lc.Letter, &lc.Count); err != nil {
			return nil, err
		}
		lc.Offset = cumOffset
		cumOffset += lc.Count
		result = append(result, lc)
	}
	return result, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (*Item, error) {
	var it Item
	err := row.Scan(
		&it.ID, &it.ParentID, &it.ItemType, &it.Name, &it.SortName, &it.Year, &it.RuntimeMinutes,
		&it.IsHD, &it.Is4K, &it.Is3D,
		&it.HasSubtitles, &it.HasTrailer, &it.HasSpecialFeature, &it.HasThemeSong, &it.HasThemeVideo,
		&it.SeasonNumber, &it.IsMissing, &it.IsUnaired,
		&it.SeriesStatus, &it.VideoType, &it.Status, &it.OfficialRating,
		pq.Array(&it.Genres), pq.Array(&it.Tags), pq.Array(&it.StudioIDs),
		&it.SyncEnabled, &it.MediaSourceCount, &it.CreatedAt, &it.PrimaryAspectRatio,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}
