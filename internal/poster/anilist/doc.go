// Package anilist is a minimal AniList GraphQL client used to look up anime
// cover images by title.
package anilist
