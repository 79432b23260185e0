// Package http provides the JSON response helpers used by the demo routes.
//
//	res := gohttp.NewResponse(w)
//
//	res.JSON(200, data)           // raw JSON with status
//	res.Success(data)             // 200 {"data": ...}
//	res.Created(data)             // 201 {"data": ...}
//	res.Error(400, "bad input")   // {"message": "bad input"}
//	res.Fail(err)                 // container / facade error → 500 or 503
//
//	var body struct{ Message string `json:"message"` }
//	err := gohttp.DecodeJSON(w, r, &body) // capped at MaxBodyBytes
package http
