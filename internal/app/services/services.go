package services

// Services defined in this package:
// - AuthService: Google sign-in, session token issuing, current user lookup
// - ClubService: club CRUD, membership roster, interest marking
// - EventService: event CRUD, registrations, update fan-out to registered users
// - LostFoundService: item posting, claim submission and verification
// - FeedbackService: feedback/grievance intake and admin responses
// - NotificationService: in-app notification writes and reads
