package utils

import (
	"academy/config"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends one HTML email through SendGrid.
func SendEmail(toName, toEmail, subject, htmlBody string) error {
	from := mail.NewEmail(config.AppConfig.AppName, config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("Failed to send email to %s, response code: %d", toEmail, resp.StatusCode)
		return fmt.Errorf("failed to send email, code: %d", resp.StatusCode)
	}

	log.Println("Email sent successfully to", toEmail)
	return nil
}

// SendEnrollmentFormEmail confirms a submitted enrollment application.
func SendEnrollmentFormEmail(email, name string) error {
	subject := "Enrollment Application Received - " + config.AppConfig.AppName

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">Enrollment Application Received</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Thank you for submitting your enrollment application. Our admissions team will review your details and supporting documents and contact you if anything further is needed.</p>
					<p style="font-size: 14px; color: #666666;">You can review your application at any time from the student portal.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">%s</p>
				</div>
			</body>
		</html>
	`, name, config.AppConfig.AppName)

	return SendEmail(name, email, subject, body)
}

// SendAccountCreatedEmail welcomes an account provisioned through the
// public enrollment flow.
func SendAccountCreatedEmail(email, name string) error {
	subject := "Your Student Account - " + config.AppConfig.AppName

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">Welcome to %s!</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Your student account has been created and your enrollment application has been received. Sign in to the student portal with this email address and the password you chose.</p>
					<p style="text-align: center; margin-top: 20px;"><a href="%s" style="display: inline-block; padding: 12px 24px; background-color: #4CAF50; color: #ffffff; text-decoration: none; border-radius: 4px;">Open Student Portal</a></p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">%s</p>
				</div>
			</body>
		</html>
	`, config.AppConfig.AppName, name, config.AppConfig.PortalURL, config.AppConfig.AppName)

	return SendEmail(name, email, subject, body)
}

// SendCourseEnrollmentEmail confirms enrollment into a course.
func SendCourseEnrollmentEmail(email, userName, courseName string) error {
	subject := "Course Enrollment Confirmation - " + config.AppConfig.AppName

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">Enrollment Successful!</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">You have successfully enrolled in:</p>
					<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">%s</h3>
					<p style="font-size: 14px; color: #666666;">You can now access the course material from the student portal.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">%s</p>
				</div>
			</body>
		</html>
	`, userName, courseName, config.AppConfig.AppName)

	return SendEmail(userName, email, subject, body)
}
