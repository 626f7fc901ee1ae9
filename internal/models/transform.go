package models

import "github.com/desertthunder/vidcat/internal/shared"

// AuthorResponseToEntity normalizes an author response, keeping only the ids
// of the embedded videos.
func AuthorResponseToEntity(r AuthorResponse) AuthorEntity {
	videoIDs := make([]int64, 0, len(r.Videos))
	for _, v := range r.Videos {
		videoIDs = append(videoIDs, v.ID)
	}
	return AuthorEntity{ID: r.ID, Name: r.Name, VideoIDs: videoIDs}
}

// ExtractVideoEntities lifts the embedded videos out of an author response,
// stamping each with the author's id.
func ExtractVideoEntities(r AuthorResponse) []VideoEntity {
	videos := make([]VideoEntity, 0, len(r.Videos))
	for _, v := range r.Videos {
		videos = append(videos, VideoEntity{
			ID:       v.ID,
			Name:     v.Name,
			CatIDs:   v.CatIDs,
			AuthorID: r.ID,
		})
	}
	return videos
}

// AuthorEntityToResponse re-embeds full video bodies by resolving each video
// id against the lookup. Ids missing from the lookup are skipped.
func AuthorEntityToResponse(e AuthorEntity, videos map[int64]VideoEntity) AuthorResponse {
	embedded := make([]VideoResponse, 0, len(e.VideoIDs))
	for _, id := range e.VideoIDs {
		if v, ok := videos[id]; ok {
			embedded = append(embedded, VideoEntityToResponse(v))
		}
	}
	return AuthorResponse{ID: e.ID, Name: e.Name, Videos: embedded}
}

// AuthorEntityToView joins an author entity with the video and category
// lookups. Videos missing from the lookup and unresolvable category ids are
// dropped.
func AuthorEntityToView(e AuthorEntity, videos map[int64]VideoEntity, categories map[int64]CategoryEntity) AuthorView {
	views := make([]AuthorVideoView, 0, len(e.VideoIDs))
	for _, id := range e.VideoIDs {
		v, ok := videos[id]
		if !ok {
			continue
		}
		views = append(views, AuthorVideoView{
			ID:         v.ID,
			Name:       v.Name,
			Categories: CategoryIDsToEntities(v.CatIDs, categories),
		})
	}
	return AuthorView{ID: e.ID, Name: e.Name, Videos: views}
}

// VideoEntityToResponse strips the author back-reference from a video entity.
func VideoEntityToResponse(v VideoEntity) VideoResponse {
	return VideoResponse{ID: v.ID, Name: v.Name, CatIDs: v.CatIDs}
}

// VideoEntityToView joins a video entity with the author and category lookups.
// Returns ok=false when the video's author is absent; the caller filters such
// videos out of the displayed collection rather than raising.
func VideoEntityToView(v VideoEntity, authors map[int64]AuthorEntity, categories map[int64]CategoryEntity) (VideoView, bool) {
	author, ok := authors[v.AuthorID]
	if !ok {
		return VideoView{}, false
	}
	return VideoView{
		ID:         v.ID,
		Name:       v.Name,
		Author:     AuthorRef{ID: author.ID, Name: author.Name},
		Categories: CategoryIDsToEntities(v.CatIDs, categories),
	}, true
}

// CategoryIDsToEntities resolves category ids against the lookup, preserving
// input order and silently omitting ids that do not exist.
func CategoryIDsToEntities(ids []int64, categories map[int64]CategoryEntity) []CategoryEntity {
	resolved := make([]CategoryEntity, 0, len(ids))
	for _, id := range ids {
		if c, ok := categories[id]; ok {
			resolved = append(resolved, c)
		}
	}
	return resolved
}

// AddVideoToResponse returns a copy of the author response with the video
// appended. A video arriving without an id is assigned a client-generated one;
// the backend stays authoritative whenever it echoes a different id back.
func AddVideoToResponse(a AuthorResponse, v VideoResponse) AuthorResponse {
	if v.ID == 0 {
		v.ID = shared.GenerateNumericID()
	}
	videos := make([]VideoResponse, 0, len(a.Videos)+1)
	videos = append(videos, a.Videos...)
	videos = append(videos, v)
	a.Videos = videos
	return a
}

// RemoveVideoFromResponse returns a copy of the author response without the
// video carrying the given id.
func RemoveVideoFromResponse(a AuthorResponse, id int64) AuthorResponse {
	videos := make([]VideoResponse, 0, len(a.Videos))
	for _, v := range a.Videos {
		if v.ID != id {
			videos = append(videos, v)
		}
	}
	a.Videos = videos
	return a
}

// UpdateVideoInResponse returns a copy of the author response with the video
// matching the given id replaced. Videos with other ids pass through untouched.
func UpdateVideoInResponse(a AuthorResponse, video VideoResponse) AuthorResponse {
	videos := make([]VideoResponse, 0, len(a.Videos))
	for _, v := range a.Videos {
		if v.ID == video.ID {
			videos = append(videos, VideoResponse{ID: video.ID, Name: video.Name, CatIDs: video.CatIDs})
		} else {
			videos = append(videos, v)
		}
	}
	a.Videos = videos
	return a
}
