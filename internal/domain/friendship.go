package domain

// FriendRequest is a pending friendship invitation between two users.
// Accepting one establishes a mutual friendship and removes the request.
type FriendRequest struct {
	ID         int64
	SenderID   int64
	ReceiverID int64
}
