// Package signer computes the HMAC-SHA256 digests used by the Centrifugo hub
// for API request signatures and for client connection and channel tokens.
//
// All digests are lowercase hex. The message is the concatenation of the
// given parts in order, without separators.
//
// # Usage
//
//	s, err := signer.New(os.Getenv("CENTRIFUGE_SECRET"))
//	if err != nil {
//		log.Fatal(err) // empty secret
//	}
//
//	// Connection token for an end user.
//	token := s.Token("42", strconv.FormatInt(time.Now().Unix(), 10), "")
//
//	// Private channel subscription sign for a client connection.
//	sign := s.Token(clientID, "$private-room", "")
//
//	// Signature for the X-API-Sign header.
//	apiSign := s.APISign(body)
//
// An empty secret is rejected with ErrEmptySecret: an HMAC keyed with an
// empty secret is trivially forgeable, so it is treated as a configuration
// error rather than silently accepted.
package signer
