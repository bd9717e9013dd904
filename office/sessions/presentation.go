package sessions

// PresentationSession is an in-progress presentation composition. Each slide
// is a multi-line text block.
type PresentationSession struct {
	Title  string
	Slides []string
}

// PresentationStore keeps presentation sessions keyed by id.
type PresentationStore struct {
	sessions map[string]*PresentationSession
}

// NewPresentationStore creates an empty presentation store.
func NewPresentationStore() *PresentationStore {
	return &PresentationStore{sessions: make(map[string]*PresentationSession)}
}

// Create allocates a new session and returns its id.
func (s *PresentationStore) Create(title string) string {
	id := nextID(title, func(id string) bool {
		_, ok := s.sessions[id]
		return ok
	})
	s.sessions[id] = &PresentationSession{Title: title}
	return id
}

// AddSlide appends a new slide.
func (s *PresentationStore) AddSlide(id, text string) error {
	sess, ok := s.sessions[id]
	if !ok {
		return &UnknownSessionError{Field: "presentation_id", ID: id}
	}
	sess.Slides = append(sess.Slides, text)
	return nil
}

// AddTextToSlide appends text to the slide at the 1-based index, separated
// by a newline.
func (s *PresentationStore) AddTextToSlide(id string, index int, text string) error {
	sess, ok := s.sessions[id]
	if !ok {
		return &UnknownSessionError{Field: "presentation_id", ID: id}
	}
	if index < 1 || index > len(sess.Slides) {
		return &InvalidIndexError{Index: index}
	}
	sess.Slides[index-1] = sess.Slides[index-1] + "\n" + text
	return nil
}

// Take removes the session from the store and returns it.
func (s *PresentationStore) Take(id string) (*PresentationSession, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, &UnknownSessionError{Field: "presentation_id", ID: id}
	}
	delete(s.sessions, id)
	return sess, nil
}
