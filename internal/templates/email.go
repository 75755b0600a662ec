package templates

import (
	"bytes"
	"html/template"
	"strconv"
	"time"
)

const brand = "Future Capital Market"

type Email struct {
	Subject string
	HTML    string
}

type WithdrawalFeeData struct {
	Name           string
	Amount         float64
	WithdrawMethod string
	WithdrawalFee  float64
	TransactionID  string
}

type WithdrawalApprovedData struct {
	Name          string
	Amount        float64
	Method        string
	Account       string
	TransactionID string
	DateAdded     string
}

type KYCSubmittedData struct {
	Email       string
	FirstName   string
	LastName    string
	Country     string
	IDType      string
	FrontIDURL  string
	BackIDURL   string
	KYCFee      float64
	SubmittedAt time.Time
}

var funcs = template.FuncMap{
	"money": func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) },
	"plain": func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
	"year":  func() int { return time.Now().Year() },
}

const layoutStart = `<!DOCTYPE html>
<html>
<head><meta name="viewport" content="width=device-width, initial-scale=1.0"><meta http-equiv="Content-Type" content="text/html; charset=UTF-8"></head>
<body style="margin:0;padding:0;background-color:#f1f5f9;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Arial,sans-serif;">
<table role="presentation" width="100%" cellspacing="0" cellpadding="0" border="0" style="padding:20px 0;"><tr><td align="center">
<table role="presentation" width="100%" cellspacing="0" cellpadding="0" border="0" style="max-width:600px;background:#ffffff;border-radius:12px;overflow:hidden;">`

const layoutEnd = `<tr><td style="background:#f8fafc;padding:24px 20px;text-align:center;border-top:1px solid #e2e8f0;">
<p style="color:#64748b;font-size:14px;margin:0;">&copy; {{year}} Future Capital Market. All rights reserved.</p>
</td></tr></table></td></tr></table></body></html>`

var withdrawalFeeTmpl = template.Must(template.New("withdrawal_fee").Funcs(funcs).Parse(layoutStart + `
<tr><td style="background:#1e40af;padding:32px 20px;text-align:center;">
<h1 style="color:#ffffff;margin:0;font-size:24px;">Future Capital Market</h1>
<p style="color:#dbeafe;margin:8px 0 0 0;font-size:14px;">Withdrawal Request - Fee Payment Required</p>
</td></tr>
<tr><td style="padding:24px 20px;color:#64748b;font-size:16px;line-height:1.6;">
<p>Hello {{.Name}},</p>
<p>Your withdrawal request has been received. To process your withdrawal, please make a deposit for the required withdrawal fee.</p>
<p><strong>Withdrawal Amount:</strong> ${{plain .Amount}}<br>
<strong>Withdrawal Method:</strong> {{.WithdrawMethod}}<br>
<strong>Withdrawal Fee (10%):</strong> ${{money .WithdrawalFee}}<br>
<strong>Transaction ID:</strong> <code>{{.TransactionID}}</code></p>
<p style="background:#fef3c7;border:1px solid #f59e0b;border-radius:8px;padding:16px;color:#92400e;font-size:14px;">
Please make a deposit of <strong>${{money .WithdrawalFee}}</strong> for the withdrawal fee using the same crypto payment methods available in your dashboard.
Your withdrawal will be processed once the fee payment is verified by our team.</p>
<p>Once approved, your withdrawal will be processed within 1-3 business days.</p>
</td></tr>` + layoutEnd))

var withdrawalApprovedTmpl = template.Must(template.New("withdrawal_approved").Funcs(funcs).Parse(layoutStart + `
<tr><td style="background:#059669;padding:32px 24px;text-align:center;">
<h1 style="color:#ffffff;margin:0;font-size:24px;">Future Capital Market</h1>
<p style="color:#d1fae5;margin:8px 0 0 0;font-size:14px;">Withdrawal Approved</p>
</td></tr>
<tr><td style="padding:32px 24px;color:#64748b;font-size:16px;line-height:1.6;">
<p>Hello {{.Name}},</p>
<div style="background:#d1fae5;border:1px solid #10b981;border-radius:8px;padding:20px;color:#065f46;">
<h2 style="margin:0 0 12px 0;font-size:18px;">Your funds are on the way</h2>
<p style="margin:0;font-size:14px;">Good news! We've approved your withdrawal request and sent the funds from your Future Capital balance to the destination wallet address you have provided.</p>
<p style="margin:12px 0 0 0;font-size:14px;">Please note: your funds may take up to 5-10 minutes to arrive in your wallet.</p>
</div>
<p style="font-size:32px;font-weight:700;color:#059669;text-align:center;">${{money .Amount}}</p>
<p><strong>Transaction ID:</strong> {{.TransactionID}}<br>
<strong>Withdrawal Method:</strong> {{.Method}}<br>
<strong>Account Type:</strong> {{.Account}}<br>
<strong>Date:</strong> {{.DateAdded}}<br>
<strong>Status:</strong> <span style="color:#059669;">Completed</span></p>
</td></tr>` + layoutEnd))

var kycSubmittedTmpl = template.Must(template.New("kyc_submitted").Funcs(funcs).Parse(layoutStart + `
<tr><td style="background:#1e40af;padding:32px 20px;text-align:center;">
<h1 style="color:#ffffff;margin:0;font-size:24px;">ID Verification Request</h1>
</td></tr>
<tr><td style="padding:24px 20px;color:#1e293b;font-size:14px;line-height:1.6;">
<p><strong>User:</strong> {{.Email}}<br>
<strong>Name:</strong> {{.FirstName}} {{.LastName}}<br>
<strong>Country:</strong> {{.Country}}<br>
<strong>ID type:</strong> {{.IDType}}<br>
<strong>Submitted:</strong> {{.SubmittedAt.Format "January 2, 2006 15:04 MST"}}</p>
<p><a href="{{.FrontIDURL}}">Front of ID</a>{{if .BackIDURL}} &middot; <a href="{{.BackIDURL}}">Back of ID</a>{{end}}</p>
<p style="background:#fef3c7;border:1px solid #f59e0b;border-radius:8px;padding:16px;color:#92400e;">
KYC verification fee: ${{plain .KYCFee}}. This fee must be paid before verification can be processed.</p>
</td></tr>` + layoutEnd))

func render(t *template.Template, subject string, data interface{}) (*Email, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	return &Email{Subject: subject, HTML: buf.String()}, nil
}

func WithdrawalFeeRequired(data WithdrawalFeeData) (*Email, error) {
	return render(withdrawalFeeTmpl, "Withdrawal Request - Fee Payment Required - "+brand, data)
}

func WithdrawalApproved(data WithdrawalApprovedData) (*Email, error) {
	return render(withdrawalApprovedTmpl, "Withdrawal Approved - Your Funds Are On The Way", data)
}

func KYCSubmitted(data KYCSubmittedData) (*Email, error) {
	return render(kycSubmittedTmpl, "ID Verification Request - "+brand, data)
}
