package model

// Snapshot is a read-only view of local state taken at dispatch time.
// Handlers must not assume it reflects effects of in-flight continuations.
type Snapshot struct {
	Token          string
	DefaultProject *Project
	Lists          []List
	Backlog        List
}

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{Token: s.Token, Backlog: CloneList(s.Backlog)}
	if s.DefaultProject != nil {
		p := *s.DefaultProject
		out.DefaultProject = &p
	}
	if s.Lists != nil {
		out.Lists = make([]List, len(s.Lists))
		for i, l := range s.Lists {
			out.Lists[i] = CloneList(l)
		}
	}
	return out
}

// AllLists returns the lists followed by the backlog.
func (s Snapshot) AllLists() []List {
	all := make([]List, 0, len(s.Lists)+1)
	all = append(all, s.Lists...)
	return append(all, s.Backlog)
}

// FindList looks up a list (backlog included) by id.
func (s Snapshot) FindList(id string) (List, bool) {
	if id == s.Backlog.ID || IsBacklogID(id) {
		return s.Backlog, true
	}
	for _, l := range s.Lists {
		if l.ID == id {
			return l, true
		}
	}
	return List{}, false
}

// FindItem returns the first occurrence of an item and the list holding it.
func (s Snapshot) FindItem(id string) (Item, List, bool) {
	for _, l := range s.AllLists() {
		if i := l.IndexOf(id); i >= 0 {
			return l.Items[i], l, true
		}
	}
	return Item{}, List{}, false
}

// Titles returns the titles of all non-backlog lists.
func (s Snapshot) Titles() []string {
	titles := make([]string, len(s.Lists))
	for i, l := range s.Lists {
		titles[i] = l.Title
	}
	return titles
}
