package attr

import "strings"

// ListOf is a separator-joined list of a single ContentType kind --
// transform-list style space-separated lists, comma-separated
// stroke-dasharray lists, and the like.
type ListOf[T ContentType] struct {
	Items     []T
	Separator string
}

func (l ListOf[T]) String() string {
	parts := make([]string, len(l.Items))
	for i, item := range l.Items {
		parts[i] = item.String()
	}
	return strings.Join(parts, l.Separator)
}

// IsEmpty is true for an empty list, per the spec's ContentType::is_empty
// contract: TokenList([]) and friends are empty, distinct from a list
// holding one empty-printing item.
func (l ListOf[T]) IsEmpty() bool { return len(l.Items) == 0 }

func (l *ListOf[T]) Round(precision int, convertPx bool) {
	for i := range l.Items {
		l.Items[i].Round(precision, convertPx)
	}
}

func (l *ListOf[T]) VisitURL(f func(url *string)) {
	for i := range l.Items {
		l.Items[i].VisitURL(f)
	}
}

func (l *ListOf[T]) VisitID(f func(id *string)) {
	for i := range l.Items {
		l.Items[i].VisitID(f)
	}
}

func (l *ListOf[T]) VisitClass(f func(class *string)) {
	for i := range l.Items {
		l.Items[i].VisitClass(f)
	}
}
