package response

// OkResponse is the `{ok:true}` acknowledgement used by the health probe and
// the completion write.
type OkResponse struct {
	OK bool `json:"ok"`
}

func Ok() OkResponse {
	return OkResponse{OK: true}
}
