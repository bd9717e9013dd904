package sessions

// DocumentSession is an in-progress document composition.
type DocumentSession struct {
	Title      string
	Paragraphs []string
}

// DocumentStore keeps document sessions keyed by id.
type DocumentStore struct {
	sessions map[string]*DocumentSession
}

// NewDocumentStore creates an empty document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{sessions: make(map[string]*DocumentSession)}
}

// Create allocates a new session and returns its id.
func (s *DocumentStore) Create(title string) string {
	id := nextID(title, func(id string) bool {
		_, ok := s.sessions[id]
		return ok
	})
	s.sessions[id] = &DocumentSession{Title: title}
	return id
}

// AddHeading adds heading text. On a still-empty document the heading is
// inserted first; once any paragraph exists it appends like everything else.
// Downstream renderers treat the first paragraph as the heading, so this
// asymmetry is load-bearing.
func (s *DocumentStore) AddHeading(id, text string) error {
	sess, ok := s.sessions[id]
	if !ok {
		return &UnknownSessionError{Field: "doc_id", ID: id}
	}
	if len(sess.Paragraphs) == 0 {
		sess.Paragraphs = append([]string{text}, sess.Paragraphs...)
	} else {
		sess.Paragraphs = append(sess.Paragraphs, text)
	}
	return nil
}

// AddParagraph appends a paragraph.
func (s *DocumentStore) AddParagraph(id, text string) error {
	sess, ok := s.sessions[id]
	if !ok {
		return &UnknownSessionError{Field: "doc_id", ID: id}
	}
	sess.Paragraphs = append(sess.Paragraphs, text)
	return nil
}

// Take removes the session from the store and returns it. After Take the id
// is invalid for every operation.
func (s *DocumentStore) Take(id string) (*DocumentSession, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, &UnknownSessionError{Field: "doc_id", ID: id}
	}
	delete(s.sessions, id)
	return sess, nil
}
