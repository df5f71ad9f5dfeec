package main

// AnnotationStore owns the session's annotations. Only the pointer
// gesture handling mutates it; rendering reads it. Order is creation
// order, which doubles as z-order: later shapes draw on top.
type AnnotationStore struct {
	items []*Annotation
}

func NewAnnotationStore() *AnnotationStore {
	return &AnnotationStore{}
}

func (s *AnnotationStore) Add(a *Annotation) {
	s.items = append(s.items, a)
}

// Remove deletes by identity. Removing an annotation that is not in
// the store is a no-op.
func (s *AnnotationStore) Remove(a *Annotation) {
	for i, item := range s.items {
		if item == a {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Contains reports whether the annotation is still in the store.
func (s *AnnotationStore) Contains(a *Annotation) bool {
	for _, item := range s.items {
		if item == a {
			return true
		}
	}
	return false
}

// ForPage returns the page's annotations in z-order. The result
// aliases the stored annotations; callers mutate through the gesture
// handlers only.
func (s *AnnotationStore) ForPage(page int) []*Annotation {
	var out []*Annotation
	for _, a := range s.items {
		if a.Page == page {
			out = append(out, a)
		}
	}
	return out
}

func (s *AnnotationStore) Len() int {
	return len(s.items)
}

func (s *AnnotationStore) All() []*Annotation {
	return s.items
}

// Clear drops every annotation. Called when a new document loads;
// annotations are session-only and never persisted.
func (s *AnnotationStore) Clear() {
	s.items = nil
}
