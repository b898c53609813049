package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"volunteermatch-backend/config"
	"volunteermatch-backend/models"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"google.golang.org/api/option"
)

type NotificationService struct {
	messaging *messaging.Client
}

var (
	notifService *NotificationService
	notifOnce    sync.Once
)

// GetNotificationService initializes the singleton exactly once; handlers
// call this from concurrent requests.
func GetNotificationService() *NotificationService {
	notifOnce.Do(func() {
		notifService = &NotificationService{}
		notifService.initFirebase()
	})
	return notifService
}

func (ns *NotificationService) initFirebase() {
	if config.AppConfig.FirebaseCredPath == "" {
		log.Println("⚠️  Firebase credentials not set, push notifications disabled")
		return
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(config.AppConfig.FirebaseCredPath))
	if err != nil {
		log.Printf("⚠️  Firebase init failed, push notifications disabled: %v", err)
		return
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		log.Printf("⚠️  Firebase messaging init failed: %v", err)
		return
	}
	ns.messaging = client
}

func (ns *NotificationService) sendPush(fcmToken string, title string, body string, data map[string]string) {
	if ns.messaging == nil || fcmToken == "" {
		return
	}

	_, err := ns.messaging.Send(context.Background(), &messaging.Message{
		Token: fcmToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	})
	if err != nil {
		log.Printf("❌ Push send error: %v", err)
		return
	}
	log.Printf("✅ Push notification sent: %s", title)
}

func (ns *NotificationService) sendEmail(toEmail string, toName string, subject string, htmlBody string) {
	if config.AppConfig.SendGridAPIKey == "" {
		log.Printf("⚠️  SendGrid API key not set, skipping email to %s", toEmail)
		return
	}

	from := mail.NewEmail(config.AppConfig.AppName, config.AppConfig.SendGridFrom)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridAPIKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("❌ Email send error: %v", err)
		return
	}
	if resp.StatusCode >= 300 {
		log.Printf("⚠️  SendGrid returned status: %d", resp.StatusCode)
		return
	}
	log.Printf("✅ Email sent to %s", toEmail)
}

// NotifyInvitationCreated tells the volunteer an organization wants them:
// push when we have a device token, email always.
func (ns *NotificationService) NotifyInvitationCreated(volunteer models.Volunteer, org models.Organization, inv models.VolunteerInvitation) {
	title := fmt.Sprintf("%s invited you to volunteer", org.Name)
	body := fmt.Sprintf("%s on %s at %s", inv.ActivityDetails, inv.InvitationDate.Format("02/01/2006"), inv.Address)

	ns.sendPush(volunteer.FCMToken, title, body, map[string]string{
		"type":         "invitation",
		"invitationId": fmt.Sprintf("%d", inv.InvitationID),
	})

	htmlBody := buildInvitationEmailHTML(volunteer.Name, org.Name, inv)
	ns.sendEmail(volunteer.Email, volunteer.Name, title, htmlBody)
}

func buildInvitationEmailHTML(volunteerName, orgName string, inv models.VolunteerInvitation) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f5f5f5;">
	<div style="background: white; border-radius: 12px; padding: 32px; box-shadow: 0 2px 8px rgba(0,0,0,0.1);">
		<h2 style="color: #4CAF50; margin-top: 0;">🤝 You've been invited!</h2>
		<p>Hi <strong>%s</strong>,</p>
		<p><strong>%s</strong> invited you to volunteer:</p>
		<div style="background: #f8f9fa; border-radius: 8px; padding: 16px; margin: 16px 0;">
			<p style="margin: 4px 0;"><strong>%s</strong></p>
			<p style="margin: 4px 0; color: #666;">Date: %s</p>
			<p style="margin: 4px 0; color: #666;">Address: %s</p>
			<p style="margin: 4px 0; color: #666;">Requirements: %s</p>
		</div>
		<p>Open the app to accept or decline.</p>
		<p style="color: #999; font-size: 12px; margin-top: 24px;">— %s</p>
	</div>
</body>
</html>`, volunteerName, orgName, inv.ActivityDetails, inv.InvitationDate.Format("02/01/2006"), inv.Address, inv.Requirements, config.AppConfig.AppName)
}
