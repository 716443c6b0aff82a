package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kitad/staybook/internal/models"
)

var ErrRecipientNotFound = errors.New("recipient not found")

type SendMessageRequest struct {
	ReceiverEmail string `json:"receiverEmail" binding:"required,email"`
	Subject       string `json:"subject" binding:"required"`
	Content       string `json:"content" binding:"required"`
}

type BookingNotificationRequest struct {
	HotelOwnerID    string  `json:"hotelOwnerId" binding:"required"`
	HotelName       string  `json:"hotelName" binding:"required"`
	GuestName       string  `json:"guestName" binding:"required"`
	GuestEmail      string  `json:"guestEmail" binding:"required,email"`
	CheckIn         string  `json:"checkIn" binding:"required"`
	CheckOut        string  `json:"checkOut" binding:"required"`
	TotalCost       float64 `json:"totalCost" binding:"required"`
	Phone           string  `json:"phone"`
	SpecialRequests string  `json:"specialRequests"`
}

type MessageService struct {
	messagesRepo models.MessagesRepo
	usersRepo    models.UsersRepo
}

func NewMessageService(messagesRepo models.MessagesRepo, usersRepo models.UsersRepo) *MessageService {
	return &MessageService{
		messagesRepo: messagesRepo,
		usersRepo:    usersRepo,
	}
}

func (ms *MessageService) Inbox(ctx context.Context, userID string) ([]*models.Message, error) {
	return ms.messagesRepo.ListInbox(ctx, userID)
}

func (ms *MessageService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return ms.messagesRepo.CountUnread(ctx, userID)
}

func (ms *MessageService) Send(ctx context.Context, senderID string, req *SendMessageRequest) (*models.Message, error) {
	receiver, err := ms.usersRepo.GetUserByEmail(ctx, req.ReceiverEmail)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrRecipientNotFound
		}
		return nil, err
	}

	sender, err := ms.usersRepo.GetUserByID(ctx, senderID)
	if err != nil {
		return nil, err
	}

	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: receiver.ID.Hex(),
		SenderName: fmt.Sprintf("%s %s", sender.FirstName, sender.LastName),
		Subject:    req.Subject,
		Content:    req.Content,
		CreatedAt:  time.Now(),
	}

	return ms.messagesRepo.CreateMessage(ctx, message)
}

// SendBookingNotification delivers a formatted booking summary to the
// hotel owner's inbox.
func (ms *MessageService) SendBookingNotification(ctx context.Context, senderID string, req *BookingNotificationRequest) (*models.Message, error) {
	sender, err := ms.usersRepo.GetUserByID(ctx, senderID)
	if err != nil {
		return nil, err
	}

	subject := fmt.Sprintf("New Booking Request for %s", req.HotelName)
	content := FormatBookingNotification(req)

	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: req.HotelOwnerID,
		SenderName: fmt.Sprintf("%s %s", sender.FirstName, sender.LastName),
		Subject:    subject,
		Content:    content,
		CreatedAt:  time.Now(),
	}

	return ms.messagesRepo.CreateMessage(ctx, message)
}

func FormatBookingNotification(req *BookingNotificationRequest) string {
	content := fmt.Sprintf(`You have received a new booking request:

Guest Name: %s
Guest Email: %s`, req.GuestName, req.GuestEmail)

	if req.Phone != "" {
		content += fmt.Sprintf("\nGuest Phone: %s", req.Phone)
	}

	content += fmt.Sprintf(`
Check-in: %s
Check-out: %s
Estimated Total: £%g`, req.CheckIn, req.CheckOut, req.TotalCost)

	if req.SpecialRequests != "" {
		content += fmt.Sprintf("\n\nSpecial Requests:\n%s", req.SpecialRequests)
	}

	content += "\n\nPlease contact the guest to confirm the booking and discuss payment arrangements."
	return content
}

func (ms *MessageService) MarkRead(ctx context.Context, messageID, userID string) (*models.Message, error) {
	return ms.messagesRepo.MarkMessageRead(ctx, messageID, userID)
}

func (ms *MessageService) Delete(ctx context.Context, messageID, userID string) error {
	return ms.messagesRepo.DeleteMessage(ctx, messageID, userID)
}
