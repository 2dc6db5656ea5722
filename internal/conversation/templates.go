package conversation

import (
	"fmt"
	"net/url"
	"time"
)

// Message templates, parameterized by session fields. Control flow lives in
// the engine; everything the bot says lives here so interpolation can be
// tested on its own.

func greetingMessage() string {
	return "👋 Hello! I'm your Mentorship By Dilawar assistant. May I know your name?"
}

func niceToMeetYou(name string) string {
	return fmt.Sprintf("I am happy to meet you, %s! 😊 Let me show you our mentorship programs.", name)
}

func programListMessage() string {
	return `You can join the following mentorship programs:
<ol style="margin-left: 20px; padding-left: 10px;">
    <li><strong>Service-based mentorship</strong> to get guaranteed clients and projects (if you already have a skill)</li>
    <li><strong>Starter mentorship program</strong> (Web programming, SEO + SMM)</li>
    <li><strong>2 months mentorship program</strong></li>
    <li><strong>Champion mentorship program</strong> (Recommended)</li>
</ol>

You've multiple options to choose but hamara sab sy best package champions mentorship program hy`
}

func whichProgramPrompt() string {
	return "Please let me know ap ny konsa mentorship program join karna hy then I'll guide you according to your preferred mentorship program."
}

func whichProgramToJoin() string {
	return "Great! Which mentorship program would you like to join?"
}

func serviceBasedDetail() string {
	return `The <strong>Service-based mentorship</strong> is perfect for those who already have a skill and want to monetize it.

This program focuses on:
<ul style="margin-left: 20px; padding-left: 10px;">
    <li>Finding and securing clients</li>
    <li>Project management</li>
    <li>Pricing your services</li>
    <li>Building a sustainable freelance business</li>
</ul>`
}

func starterDetail() string {
	return `The <strong>Starter mentorship program</strong> is designed for beginners who want to learn in-demand skills.

This program covers:
<ul style="margin-left: 20px; padding-left: 10px;">
    <li>Web programming fundamentals</li>
    <li>Search Engine Optimization (SEO)</li>
    <li>Social Media Marketing (SMM)</li>
    <li>Building your first projects</li>
</ul>`
}

func twoMonthsDetail() string {
	return `The <strong>2 months mentorship program</strong> is an intensive program for those who want to accelerate their learning.

This program includes:
<ul style="margin-left: 20px; padding-left: 10px;">
    <li>Twice weekly one-on-one sessions</li>
    <li>Personalized curriculum</li>
    <li>Hands-on projects</li>
    <li>Job placement assistance</li>
</ul>

<p><strong>Fee Structure:</strong></p>
<ul style="margin-left: 20px; padding-left: 10px;">
    <li>Class Days: 6 (Monday to Saturday)</li>
    <li>Est. Duration: 2 Months (48 Days)</li>
    <li>Registration Fee: Rs. 5,000</li>
    <li>2 months mentorship actual fee: Rs. 30,000</li>
    <li>Fee after a final discount: Rs. 20,000 ($70) one-time only (1 year web hosting and Optional courses are included for FREE)</li>
    <li>2 Months Installments Fee: Rs. 12,500 ($45) per month (1 Year FREE web hosting included and Optional courses are NOT included)</li>
</ul>`
}

func championDetail() string {
	return `The <strong>Champion mentorship program</strong> is our most comprehensive and recommended program.

This premium program offers:
<ul style="margin-left: 20px; padding-left: 10px;">
    <li>Extended mentorship period</li>
    <li>Advanced skill development</li>
    <li>Real-world client projects</li>
    <li>Ongoing support even after program completion</li>
    <li>Exclusive networking opportunities</li>
</ul>

This is our best package for those serious about transforming their career.`
}

func championUpsellLead() string {
	return "However, I would recommend you consider our <strong>Champion Mentorship Program</strong> for the most comprehensive experience and best value."
}

func championPitch() string {
	return "If you are creative and have a creative mindset then I would recommend ap Champion Mentorship Program join kar lien."
}

func championBenefits() string {
	return `By Joining Champion Mentorship Program (CMP), You'll Get:
<ol style="margin-left: 20px; padding-left: 10px;">
    <li>Lifetime FREE web hosting with SSL (SAVE up to Rs. 18000 per year) and FREE subdomain for unlimited websites (First time in the history of tech education).</li>
    <li>No need to pay any e-commerce platform fees (SAVE $25/month or $300/year or Rs. 85,000 per year).</li>
    <li>More comprehensive and detailed learning experience and extra features than 2 and 6 months mentorship program.</li>
    <li>100% guaranteed job placement in our digital marketing company at https://marketoze.dilawarpro.com</li>
    <li>Optional courses (Digital Marketing or Domain Flipping) and YouTube Automation Included for FREE</li>
    <li>Lifetime FREE personalized special students support by the Mentor</li>
    <li>1-on-1 classes and flexible classes timing</li>
    <li>All the modules listed on our website at mentorship.dilawarpro.com and much more...</li>
</ol>

<p><strong>Fee Structure:</strong></p>
<ul style="margin-left: 20px; padding-left: 10px;">
    <li>Class Days: Flexible</li>
    <li>Est. Duration: Less than 2 Months</li>
    <li>Registration Fee: Rs. 5,000</li>
    <li>Champions mentorship program actual fee: Rs. 35,000</li>
    <li>Fee after a final discount: Rs. 25,000 ($90) one-time payment</li>
</ul>
<p><em>The Champions Mentorship Program is loved by thousands of students and is recommended for creative students.</em></p>`
}

func championClosing() string {
	return "Is mentorship main apke sath kuch ayesi pro tips, hacks, secrets and smart strategies share ki jayengi jis sy ap within 20 to 30 days main apni income start kar sakty hain."
}

func packagesOverview(name string) string {
	return fmt.Sprintf(`We offer two comprehensive mentorship packages, %s:

<ol style="margin-left: 20px; padding-left: 10px;">
    <li><strong>Basic Mentorship Package</strong>: Includes weekly one-on-one sessions, personalized learning path, and access to our resource library.</li>
    <li><strong>Premium Mentorship Package</strong>: Includes everything in the Basic package, plus priority support, industry networking opportunities, and project-based learning with real-world applications.</li>
</ol>

Would you like to know more about a specific package or book an appointment?`, name)
}

func basicPackageDetail() string {
	return `<strong>Basic Mentorship Package Details</strong>:
<ul style="margin-left: 20px; padding-left: 10px;">
    <li>Weekly 60-minute one-on-one sessions</li>
    <li>Personalized learning path tailored to your goals</li>
    <li>Access to our extensive resource library</li>
    <li>Monthly progress assessments</li>
    <li>Email support between sessions</li>
    <li>Certificate of completion</li>
</ul>
This package is perfect for beginners or those looking for structured guidance.`
}

func premiumPackageDetail() string {
	return `<strong>Premium Mentorship Package Details</strong>:
<ul style="margin-left: 20px; padding-left: 10px;">
    <li>Bi-weekly 90-minute one-on-one sessions</li>
    <li>Everything in the Basic package</li>
    <li>Priority support with 24-hour response time</li>
    <li>Industry networking opportunities</li>
    <li>Project-based learning with real-world applications</li>
    <li>Job placement assistance</li>
    <li>Lifetime access to our alumni network</li>
</ul>
This package is ideal for serious learners aiming for professional growth.`
}

func locationMessage() string {
	return "Our mentorship sessions are conducted remotely, so you can join from anywhere in the world! This means your room is your classroom. We use professional conferencing tools to ensure a seamless experience, giving you the freedom of location and time."
}

func feesMessage() string {
	return `<strong>Fee Structure for Our Mentorship Programs</strong>

<div style="margin-left: 20px; padding-left: 10px;">
    <h4>2 Months Mentorship Program</h4>
    <ul>
        <li>Class Days: 6 (Monday to Saturday)</li>
        <li>Est. Duration: 2 Months (48 Days)</li>
        <li>Registration Fee: Rs. 5,000</li>
        <li>2 months mentorship actual fee: Rs. 30,000</li>
        <li>Fee after a final discount: Rs. 20,000 ($70) one-time only (1 year web hosting and Optional courses are included for FREE)</li>
        <li>2 Months Installments Fee: Rs. 12,500 ($45) per month (1 Year FREE web hosting included and Optional courses are NOT included)</li>
    </ul>

    <h4>Champions Mentorship Program (Best Choice)</h4>
    <ul>
        <li>Class Days: Flexible</li>
        <li>Est. Duration: Less than 2 Months</li>
        <li>Registration Fee: Rs. 5,000</li>
        <li>Champions mentorship program actual fee: Rs. 35,000</li>
        <li>Fee after a final discount: Rs. 25,000 ($90) one-time payment</li>
    </ul>
    <p><em>The Champions Mentorship Program is loved by thousands of students and is recommended for creative students.</em></p>
</div>`
}

func durationMessage() string {
	return `Our mentorship programs are flexible in duration:

<ol style="margin-left: 20px; padding-left: 10px;">
    <li><strong>Short-term</strong>: 1-month program for specific skill development</li>
    <li><strong>Standard</strong>: 3-month program for comprehensive learning</li>
    <li><strong>Extended</strong>: 6-month program for in-depth mastery</li>
</ol>

You can always extend your mentorship period if needed.`
}

func paymentMethodsMessage() string {
	return `<strong>Payment Methods for Mentorship Program</strong>

<p><strong>Bank Name:</strong> United Bank Limited (UBL)</p>
<p><strong>Account Title:</strong> DILAWAR KHAN</p>
<p><strong>IBAN:</strong> PK66UNIL0109000285863354</p>
<p><strong>Account Number:</strong> 0443285863354</p>

<p><strong>EasyPaisa/JazzCash:</strong> 03104212713</p>
<p><strong>Account Title:</strong> DILAWAR KHAN</p>

<p><em>After payment, send invoice or screenshot of your payment then we'll send you a receipt of your payment after verification within few minutes.</em></p>`
}

func registrationProcessMessage() string {
	return `<strong>Registration Process</strong>

<p>We have a simple and easy 3-step registration process. Please follow the steps below to get registered:</p>

<ol style="margin-left: 20px; padding-left: 10px;">
    <li><strong>Step 01:</strong> Submit your complete details, including your full name, father's name, email address, city, and WhatsApp number.</li>
    <li><strong>Step 02:</strong> Join our WhatsApp group to access the LIVE 3-Day FREE classes. Here's the link: <a href="https://chat.whatsapp.com/JrMGJFzWF4F7oFRTXV5Xbo" target="_blank">Join WhatsApp Group</a>.</li>
    <li><strong>Step 03:</strong> After attending the FREE classes, decide the program you want to continue by submitting your selected program fee.</li>
</ol>

<p><strong>Important Note:</strong> You can get a full easy and guaranteed refund within 7 days if not interested.</p>`
}

func bookingIntro(name string) string {
	return fmt.Sprintf(`Great! Let's book an appointment for you, %s.

First, I'll need your email address to send you confirmation details.`, name)
}

func invalidEmail() string {
	return "That doesn't look like a valid email address. Please enter a valid email."
}

func invalidPhone() string {
	return "That doesn't look like a valid phone number. Please enter a valid WhatsApp number."
}

func askWhatsapp() string {
	return "Thanks! Now, please provide your WhatsApp number so we can send you reminders."
}

func askDate() string {
	return "Great! Now, please select a preferred date for your appointment."
}

func askTime(date string) string {
	return fmt.Sprintf("You selected %s. Now, please select a preferred time slot.", date)
}

func confirmationSummary(s Session) string {
	return fmt.Sprintf(`Great! You've selected %s at %s.

<p>Please confirm your appointment details:</p>
<ul style="margin-left: 20px; padding-left: 10px;">
    <li><strong>Name:</strong> %s</li>
    <li><strong>Email:</strong> %s</li>
    <li><strong>WhatsApp:</strong> %s</li>
    <li><strong>Date:</strong> %s</li>
    <li><strong>Time:</strong> %s</li>
</ul>

<p>Is this correct?</p>`, s.AppointmentDate, s.AppointmentTime,
		s.UserName, s.UserEmail, s.UserWhatsapp, s.AppointmentDate, s.AppointmentTime)
}

func bookingConfirmed() string {
	return "Wonderful! Your appointment has been booked successfully."
}

func bookingRestart() string {
	return "No problem. Let's start over with the booking process."
}

func appointmentSummary(s Session, programLabel, whatsappLink string) string {
	return fmt.Sprintf(`<div class="appointment-summary">
<h4>Appointment Summary</h4>
<div class="summary-content">
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>WhatsApp:</strong> %s</p>
    <p><strong>Date:</strong> %s</p>
    <p><strong>Time:</strong> %s</p>
    <p><strong>Mentorship:</strong> %s</p>
</div>
<p class="share-instruction">Please confirm this appointment on WhatsApp</p>
<a class="whatsapp-btn" href="%s" target="_blank">Confirm on WhatsApp</a>
</div>`, s.UserName, s.UserEmail, s.UserWhatsapp, s.AppointmentDate, s.AppointmentTime,
		programLabel, whatsappLink)
}

func postBookingThanks(programLabel string) string {
	return fmt.Sprintf("Thank you for booking an appointment with %s! Is there anything else you'd like to know?", programLabel)
}

func bookingCancelled(name string) string {
	return fmt.Sprintf("I've cancelled the booking process. What else would you like to know about our mentorship program, %s?", name)
}

func backToMenuMessage(name string) string {
	return fmt.Sprintf("What else would you like to know about our mentorship program, %s?", name)
}

func fallbackMessage() string {
	return "I'm not sure I understand. How can I help you with our mentorship program?"
}

func askWebsiteReading(name string) string {
	return fmt.Sprintf("%s, have you read all the details from our website completely?", name)
}

func readWebsiteFirst(websiteURL string) string {
	return fmt.Sprintf("I recommend reading all the details on our website first at %s to better understand our programs. Once you've done that, come back here and we can proceed with selecting a mentorship program.", websiteURL)
}

func noBookingInterest() string {
	return "No problem! What would you like to know about our mentorship program?"
}

// trustMessages is the scripted run of persuasive messages shown unprompted
// after the visitor first reaches the menu, in firing order.
func trustMessages() []string {
	return []string{
		"Ap is mentorship ko befikr ho k join kar lien. This mentorship will not disappoint you at any cost because I truly understand k ap kitni mushkil sy fee pay kariengy.",
		"Believe me is mentorship main apka 1 second aur 1 paisa bhi waste nhi hoga.",
		"Sab kuch practically and strategically guide karny sy ly k apki first income tak main apky sath hun don't worry.",
		"Agar ap mehnat karty hain to is mentorship k baad main apko apny digital marketing company main as a Senior Developer, SEO Expert, SMM Specialist ya phir as a Mentor job py rakh longa.",
		"Meri puri koshish hogi ky first module complete hoty he apki income start ho jayegi Insha'Allah.",
		"Don't worry just trust me and start taking your classes as soon as possible. I will take you to the next level.",
		"Agar mentorship complete karny ke baad aapko projects nahi milte ya aapki income start nahi hoti to apki total fee wapas kar di jayegi apko.",
	}
}

// timeSlots are the offered appointment slots.
func timeSlots() []string {
	return []string{
		"9:00 AM", "10:00 AM", "11:00 AM",
		"1:00 PM", "2:00 PM", "3:00 PM",
		"4:00 PM", "5:00 PM",
	}
}

// dateOptions returns the next `days` calendar days formatted like
// "Monday, January 2".
func dateOptions(now time.Time, days int) []string {
	options := make([]string, 0, days)
	for i := 1; i <= days; i++ {
		options = append(options, now.AddDate(0, 0, i).Format("Monday, January 2"))
	}
	return options
}

// WhatsAppLink builds the deep link the visitor uses to confirm the booking.
// The pre-filled message is the only place booking details ever leave the
// session, and sending it stays a manual step.
func WhatsAppLink(number, programLabel string, s Session) string {
	text := fmt.Sprintf(`*Appointment Confirmation*

Name: %s
Email: %s
WhatsApp: %s
Date: %s
Time: %s
Mentorship: %s

I would like to confirm this appointment. Thank you!`,
		s.UserName, s.UserEmail, s.UserWhatsapp,
		s.AppointmentDate, s.AppointmentTime, programLabel)

	v := url.Values{}
	v.Set("text", text)
	return fmt.Sprintf("https://wa.me/%s?%s", number, v.Encode())
}
