package email

const (
	subjectWelcome       = "Welcome to SalonHub"
	subjectNewRequestFmt = "New service request from %s"
)
