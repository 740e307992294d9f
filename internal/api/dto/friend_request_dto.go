package dto

// FriendRequestSendRequest payload for sending a friendship invitation.
type FriendRequestSendRequest struct {
	SenderID   int64 `json:"emisorId"`
	ReceiverID int64 `json:"receptorId"`
}

// FriendRequestResponse is the friend-request projection returned to
// clients; sender and receiver are embedded as public user projections.
type FriendRequestResponse struct {
	ID       int64        `json:"id"`
	Sender   UserResponse `json:"emisor"`
	Receiver UserResponse `json:"receptor"`
}
