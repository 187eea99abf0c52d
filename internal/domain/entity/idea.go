package entity

// Idea is a pre-seeded project idea. Ideas are never created or deleted
// here; only the like fields are mutated.
type Idea struct {
	ID        int      `json:"id"`
	Summary   string   `json:"summary"`
	TechStack string   `json:"tech_stack"`
	Likes     int      `json:"likes"`
	LikedBy   []string `json:"liked_by"`
}

// HasLiked reports whether the given email is in the idea's liked_by set.
func (i *Idea) HasLiked(email string) bool {
	for _, liker := range i.LikedBy {
		if liker == email {
			return true
		}
	}
	return false
}
