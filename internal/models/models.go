package models

// CategoryResponse represents a category as returned by GET /categories.
// Categories are reference data: response, entity, and view are the same shape.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CategoryEntity is the store-resident form of a category.
type CategoryEntity = CategoryResponse

// VideoResponse represents a video as embedded in an author response.
type VideoResponse struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	CatIDs []int64 `json:"catIds"`
}

// AuthorResponse represents an author as returned by the backend, with videos embedded.
type AuthorResponse struct {
	ID     int64           `json:"id"`
	Name   string          `json:"name"`
	Videos []VideoResponse `json:"videos"`
}

// VideoEntity is the normalized form of a video: the embedded response plus
// the id of the author that owns it. Exactly one author references a video.
type VideoEntity struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	CatIDs   []int64 `json:"catIds"`
	AuthorID int64   `json:"authorId"`
}

// AuthorEntity is the normalized form of an author: embedded videos reduced
// to their ids. Must stay in sync with which VideoEntity rows carry this
// author's id; the two are denormalized halves of one relationship.
type AuthorEntity struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	VideoIDs []int64 `json:"videoIds"`
}

// AuthorRef identifies an author inside a video view.
type AuthorRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// VideoView is the display form of a video with author and categories resolved.
type VideoView struct {
	ID         int64            `json:"id"`
	Name       string           `json:"name"`
	Author     AuthorRef        `json:"author"`
	Categories []CategoryEntity `json:"categories"`
}

// AuthorVideoView is a video inside an author view; the back-reference to the
// author is omitted.
type AuthorVideoView struct {
	ID         int64            `json:"id"`
	Name       string           `json:"name"`
	Categories []CategoryEntity `json:"categories"`
}

// AuthorView is the display form of an author with videos reconstituted.
type AuthorView struct {
	ID     int64             `json:"id"`
	Name   string            `json:"name"`
	Videos []AuthorVideoView `json:"videos"`
}

// NewAuthorEntity constructs an author entity from its parts.
func NewAuthorEntity(id int64, name string, videoIDs []int64) AuthorEntity {
	return AuthorEntity{ID: id, Name: name, VideoIDs: videoIDs}
}
