// Package movies provides a client for the OMDb movie API.
package movies

// Movie is a raw OMDb detail record. Field names mirror the upstream
// payload, including its "N/A" sentinel values.
type Movie struct {
	ImdbID     string `json:"imdbID"`
	Title      string `json:"Title"`
	Plot       string `json:"Plot"`
	Poster     string `json:"Poster"`
	Year       string `json:"Year"`
	ImdbRating string `json:"imdbRating"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Actors     string `json:"Actors"`
	Response   string `json:"Response"`
}

// Valid reports whether the record passed the upstream validity gate.
func (m Movie) Valid() bool {
	return m.Response == "True"
}
