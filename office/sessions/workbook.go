package sessions

// WorkbookSession is an in-progress spreadsheet composition. Rows form a
// sparse grid grown on demand; cells hold strings or numbers.
type WorkbookSession struct {
	Title string
	Rows  [][]any
}

// WorkbookStore keeps workbook sessions keyed by id.
type WorkbookStore struct {
	sessions map[string]*WorkbookSession
}

// NewWorkbookStore creates an empty workbook store.
func NewWorkbookStore() *WorkbookStore {
	return &WorkbookStore{sessions: make(map[string]*WorkbookSession)}
}

// Create allocates a new session and returns its id.
func (s *WorkbookStore) Create(title string) string {
	id := nextID(title, func(id string) bool {
		_, ok := s.sessions[id]
		return ok
	})
	s.sessions[id] = &WorkbookSession{Title: title}
	return id
}

// WriteCell writes a value at the 1-based (row, col) address, growing the
// grid as needed. New cells are padded with empty strings; existing cells
// are never shrunk.
func (s *WorkbookStore) WriteCell(id string, row, col int, value any) error {
	sess, ok := s.sessions[id]
	if !ok {
		return &UnknownSessionError{Field: "workbook_id", ID: id}
	}
	if row < 1 || col < 1 {
		return ErrInvalidCoordinate
	}
	for len(sess.Rows) < row {
		sess.Rows = append(sess.Rows, []any{})
	}
	for len(sess.Rows[row-1]) < col {
		sess.Rows[row-1] = append(sess.Rows[row-1], "")
	}
	sess.Rows[row-1][col-1] = value
	return nil
}

// Take removes the session from the store and returns it.
func (s *WorkbookStore) Take(id string) (*WorkbookSession, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, &UnknownSessionError{Field: "workbook_id", ID: id}
	}
	delete(s.sessions, id)
	return sess, nil
}
