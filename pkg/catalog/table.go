package catalog

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Column defines one typed column of a Table: a header label, a value
// accessor, and an optional fixed width (0 means unconstrained; longer
// values are truncated with an ellipsis).
type Column[T any] struct {
	Header string
	Width  int
	Value  func(T) string
}

// Table renders a sequence of records as rows with typed column
// definitions. Pagination is either server-side (the caller owns
// page/pageSize/total, normally copied from a list response's Meta) or
// client-side, where the table slices an already-fully-loaded sequence
// itself. The table has no knowledge of row actions; callers look up the
// clicked/selected record via Rows().
type Table[T any] struct {
	columns      []Column[T]
	rows         []T
	loading      bool
	err          string
	emptyMessage string

	serverSide bool
	page       int
	pageSize   int
	total      int

	// showRowsWhileLoading keeps the previous rows visible during a
	// refetch instead of collapsing to the loading indicator.
	showRowsWhileLoading bool
}

// NewTable creates a client-side paginated table with the default page size.
func NewTable[T any](columns []Column[T]) *Table[T] {
	return &Table[T]{
		columns:      columns,
		emptyMessage: "No records found",
		page:         DefaultPage,
		pageSize:     DefaultPageSize,
	}
}

// SetRows replaces the table's records. In client-side mode the total is
// derived from the sequence and the current page is re-clamped.
func (t *Table[T]) SetRows(rows []T) {
	t.rows = rows

	if !t.serverSide {
		t.total = len(rows)
		t.page = ClampPage(t.page, t.total, t.pageSize)
	}
}

// SetLoading toggles the loading indicator.
func (t *Table[T]) SetLoading(loading bool) {
	t.loading = loading
}

// KeepRowsWhileLoading renders existing rows alongside the loading
// indicator on refetch, avoiding layout flicker.
func (t *Table[T]) KeepRowsWhileLoading(keep bool) {
	t.showRowsWhileLoading = keep
}

// SetError sets the error message shown instead of the table body. An
// empty message clears the error state.
func (t *Table[T]) SetError(msg string) {
	t.err = msg
}

// SetEmptyMessage configures the message shown when there are no rows, no
// error, and no fetch in flight.
func (t *Table[T]) SetEmptyMessage(msg string) {
	t.emptyMessage = msg
}

// UseServerMeta switches the table to server-side pagination and adopts
// the page/pageSize/total owned by the remote data source.
func (t *Table[T]) UseServerMeta(meta Meta) {
	t.serverSide = true
	t.total = meta.Total

	if meta.PageSize > 0 {
		t.pageSize = meta.PageSize
	}

	if meta.Page > 0 {
		t.page = ClampPage(meta.Page, t.total, t.pageSize)
	}
}

// SetPage requests a page change, clamped to [1, max(1, totalPages)].
func (t *Table[T]) SetPage(page int) {
	t.page = ClampPage(page, t.total, t.pageSize)
}

// SetPageSize changes the page size and resets to page 1.
func (t *Table[T]) SetPageSize(size int) {
	if size < 1 {
		size = DefaultPageSize
	}

	t.pageSize = size
	t.page = 1
}

// Page returns the current page.
func (t *Table[T]) Page() int { return t.page }

// PageSize returns the current page size.
func (t *Table[T]) PageSize() int { return t.pageSize }

// Total returns the total record count.
func (t *Table[T]) Total() int { return t.total }

// TotalPages returns the page count for the current total and page size.
func (t *Table[T]) TotalPages() int { return TotalPages(t.total, t.pageSize) }

// Rows returns the records of the current page: the full supplied slice in
// server-side mode (the server already paginated it), a page slice in
// client-side mode.
func (t *Table[T]) Rows() []T {
	if t.serverSide {
		return t.rows
	}

	return SlicePage(t.rows, t.page, t.pageSize)
}

// Render writes the table's current state: a loading indicator while a
// fetch is in flight, the error message on failure, the empty message on an
// empty result, otherwise the rows and a pagination footer.
func (t *Table[T]) Render(w io.Writer) error {
	if t.loading {
		_, _ = fmt.Fprintln(w, "Loading...")

		if !t.showRowsWhileLoading {
			return nil
		}
	}

	if t.err != "" {
		_, err := fmt.Fprintf(w, "Error: %s\n", t.err)

		return err
	}

	rows := t.Rows()
	if len(rows) == 0 {
		if t.loading {
			return nil
		}

		_, err := fmt.Fprintln(w, t.emptyMessage)

		return err
	}

	table := tablewriter.NewWriter(w)

	headers := make([]any, 0, len(t.columns))
	for _, col := range t.columns {
		headers = append(headers, col.Header)
	}

	table.Header(headers...)

	for _, row := range rows {
		cells := make([]any, 0, len(t.columns))
		for _, col := range t.columns {
			cells = append(cells, truncate(col.Value(row), col.Width))
		}

		_ = table.Append(cells...)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	if t.TotalPages() > 1 {
		_, _ = fmt.Fprintf(w, "Page %d of %d (%d total)\n", t.page, t.TotalPages(), t.total)
	}

	return nil
}

func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}

	runes := []rune(s)
	if len(runes) <= width {
		return s
	}

	if width == 1 {
		return "…"
	}

	return string(runes[:width-1]) + "…"
}
