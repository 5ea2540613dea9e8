package email

// Email templates in HTML format

// BaseTemplate is the base layout for all emails
const BaseTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        body {
            margin: 0;
            padding: 0;
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            background-color: #faf7f5;
            color: #2d2a26;
        }
        .container {
            max-width: 600px;
            margin: 0 auto;
            padding: 40px 20px;
        }
        .card {
            background: #ffffff;
            border-radius: 12px;
            padding: 32px;
            border: 1px solid #eee4dd;
        }
        .logo {
            text-align: center;
            margin-bottom: 24px;
        }
        .logo h1 {
            font-size: 26px;
            color: #b45d69;
            margin: 0;
        }
        h2 {
            color: #2d2a26;
            font-size: 24px;
            margin: 0 0 16px;
        }
        p {
            color: #5c564f;
            font-size: 16px;
            line-height: 1.6;
            margin: 0 0 16px;
        }
        .btn {
            display: inline-block;
            background: #b45d69;
            color: #ffffff !important;
            text-decoration: none;
            padding: 14px 28px;
            border-radius: 8px;
            font-weight: 600;
            font-size: 16px;
            margin: 16px 0;
        }
        .footer {
            text-align: center;
            margin-top: 32px;
            color: #a39a90;
            font-size: 12px;
        }
        .highlight {
            color: #b45d69;
            font-weight: 600;
        }
        .info-box {
            background: #faf4f0;
            border-radius: 8px;
            padding: 16px;
            margin: 16px 0;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="card">
            <div class="logo">
                <h1>Wedding Venues Kigali</h1>
            </div>
            {{.Content}}
        </div>
        <div class="footer">
            <p>Wedding Venues Kigali &middot; Kigali, Rwanda</p>
            <p>You received this email because of a booking request made on weddingvenueskigali.rw</p>
        </div>
    </div>
</body>
</html>
`

// ApprovalTemplate - notification when a booking request is approved
const ApprovalTemplate = `
<h2>🎉 Your Booking is Approved!</h2>
<p>Congratulations, <span class="highlight">{{.CustomerName}}</span>!</p>
<p>Your wedding booking at <strong>{{.VenueName}}</strong> has been approved.</p>
<div class="info-box">
    <p><strong>Venue:</strong> {{.VenueName}}</p>
    <p><strong>Event date:</strong> {{.EventDate}}</p>
    <p><strong>Guests:</strong> {{.GuestCount}}</p>
    <p><strong>Price:</strong> {{.Price}}</p>
    {{if .VenueContact}}<p><strong>Venue contact:</strong> {{.VenueContact}}</p>{{end}}
</div>
<p>{{.VenueOwnerName}} will reach out shortly to finalize the arrangements for your special day.</p>
<a href="{{.BookingsURL}}" class="btn">View your booking</a>
`

// RejectionTemplate - notification when a booking request is rejected
const RejectionTemplate = `
<h2>Booking Request Update</h2>
<p>Dear <span class="highlight">{{.CustomerName}}</span>,</p>
<p>Unfortunately, your booking request for <strong>{{.VenueName}}</strong> on {{.EventDate}} could not be accepted.</p>
<div class="info-box">
    <p><strong>Reason:</strong> {{.RejectionReason}}</p>
</div>
<p>We are sorry for the inconvenience. Plenty of other beautiful venues in Kigali are available for your date.</p>
<a href="{{.VenuesURL}}" class="btn">Browse other venues</a>
<p>Warm regards,<br>{{.VenueOwnerName}}</p>
`
