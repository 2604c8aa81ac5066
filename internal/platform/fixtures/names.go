package fixtures

var firstNames = []string{
	"Ava", "Liam", "Noah", "Emma", "Olivia", "Elijah", "Mia", "Lucas", "Amelia", "Mateo",
	"Harper", "Ethan", "Sofia", "James", "Isla", "Henry", "Chloe", "Aiden", "Zoe", "Leo",
	"Priya", "Kenji", "Amara", "Diego", "Fatima", "Tomasz", "Ingrid", "Kwame", "Yara", "Omar",
}

var lastNames = []string{
	"Smith", "Johnson", "Garcia", "Nguyen", "Patel", "Kim", "Okafor", "Silva", "Novak", "Rossi",
	"Schmidt", "Larsen", "Haddad", "Tanaka", "Moreau", "Kowalski", "Mensah", "Ivanova", "Cohen", "Reyes",
}

var jobTitles = []string{
	"Software Engineer", "Product Designer", "Marketing Manager", "HR Specialist", "Sales Executive",
	"Data Analyst", "QA Engineer", "Account Manager", "Recruiter", "DevOps Engineer",
	"Content Strategist", "Frontend Developer", "Backend Developer", "UX Researcher", "Finance Officer",
}

var reasons = []string{
	"Family event out of town.",
	"Medical appointment in the morning.",
	"Planned vacation booked months ago.",
	"Moving to a new apartment.",
	"Recovering from the flu.",
	"Attending a friend's wedding.",
}

var verbs = []string{"compile", "refactor", "design", "review", "deploy", "document", "test", "index"}

var nouns = []string{"pipeline", "dashboard", "driver", "landing page", "protocol", "database", "campaign", "firewall"}
