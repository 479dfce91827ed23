package utils

import (
	"bytes"
	"html/template"
	"io"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// EnrollmentDecisionData feeds the enrollment decision email template.
type EnrollmentDecisionData struct {
	StudentName string
	ClassTitle  string
	Date        string
	Hour        string
	Location    string
	Accepted    bool
	CheckinCode string
}

const enrollmentDecisionTmpl = `
<h2>{{if .Accepted}}You're in!{{else}}Enrollment update{{end}}</h2>
<p>Hi {{.StudentName}},</p>
{{if .Accepted}}
<p>Your spot in <b>{{.ClassTitle}}</b> on {{.Date}} at {{.Hour}} ({{.Location}}) is confirmed.</p>
<p>Show the attached QR code at check-in. Code: <b>{{.CheckinCode}}</b></p>
{{else}}
<p>Unfortunately your request for <b>{{.ClassTitle}}</b> on {{.Date}} could not be accepted.
Please pick another session from the schedule.</p>
{{end}}
`

// SendEnrollmentDecisionEmail sends the accept/reject email (async).
// Delivery is best effort; failures are logged and never block the caller.
func SendEnrollmentDecisionEmail(to string, data EnrollmentDecisionData, qrPNG []byte) {
	if to == "" {
		return
	}
	go func() {
		host := os.Getenv("SMTP_HOST")
		if host == "" {
			log.Println("SMTP_HOST not set, skipping enrollment email")
			return
		}

		tmpl, err := template.New("enrollment").Parse(enrollmentDecisionTmpl)
		if err != nil {
			log.Printf("failed to parse email template: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("failed to render email template: %v", err)
			return
		}

		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		if data.Accepted {
			m.SetHeader("Subject", "Enrollment confirmed: "+data.ClassTitle)
		} else {
			m.SetHeader("Subject", "Enrollment request update: "+data.ClassTitle)
		}
		m.SetBody("text/html", body.String())
		if data.Accepted && len(qrPNG) > 0 {
			m.Attach("checkin.png", gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(qrPNG)
				return err
			}))
		}

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("failed to send enrollment email: %v", err)
		}
	}()
}
