package casetemplate

import "github.com/locvowork/case_upload_template/internal/domain"

func sampleRecords() []domain.CaseRecord {
	return []domain.CaseRecord{
		{CaseNumber: "CASE-001", FirstName: "Rajesh", LastName: "Kumar", ContactNumber: "9876543210", Email: "rajesh.kumar@email.com", Address: "123 Main Street Apt 5", State: "Maharashtra", District: "Mumbai", Pincode: "400001"},
		{CaseNumber: "CASE-002", FirstName: "Priya", LastName: "Singh", ContactNumber: "9876543211", Email: "priya.singh@email.com", Address: "456 Oak Avenue", State: "Karnataka", District: "Bangalore", Pincode: "560001"},
		{CaseNumber: "CASE-003", FirstName: "Amit", LastName: "Patel", ContactNumber: "9876543212", Email: "amit.patel@email.com", Address: "789 Elm Road", State: "Gujarat", District: "Ahmedabad", Pincode: "380001"},
		{CaseNumber: "CASE-004", FirstName: "Neha", LastName: "Sharma", ContactNumber: "9876543213", Email: "neha.sharma@email.com", Address: "321 Pine Lane", State: "Delhi", District: "Central Delhi", Pincode: "110001"},
		{CaseNumber: "CASE-005", FirstName: "Vikram", LastName: "Desai", ContactNumber: "9876543214", Email: "vikram.desai@email.com", Address: "654 Maple Drive", State: "Telangana", District: "Hyderabad", Pincode: "500001"},
		{CaseNumber: "CASE-006", FirstName: "Anjali", LastName: "Gupta", ContactNumber: "9876543215", Email: "anjali.gupta@email.com", Address: "987 Cedar Street", State: "Uttar Pradesh", District: "Lucknow", Pincode: "226001"},
		{CaseNumber: "CASE-007", FirstName: "Rohan", LastName: "Nair", ContactNumber: "9876543216", Email: "rohan.nair@email.com", Address: "147 Birch Road", State: "Kerala", District: "Kochi", Pincode: "682001"},
		{CaseNumber: "CASE-008", FirstName: "Divya", LastName: "Menon", ContactNumber: "9876543217", Email: "divya.menon@email.com", Address: "258 Spruce Avenue", State: "Tamil Nadu", District: "Chennai", Pincode: "600001"},
		{CaseNumber: "CASE-009", FirstName: "Sanjay", LastName: "Reddy", ContactNumber: "9876543218", Email: "sanjay.reddy@email.com", Address: "369 Walnut Lane", State: "Andhra Pradesh", District: "Visakhapatnam", Pincode: "530001"},
		{CaseNumber: "CASE-010", FirstName: "Pooja", LastName: "Verma", ContactNumber: "9876543219", Email: "pooja.verma@email.com", Address: "741 Ash Drive", State: "Rajasthan", District: "Jaipur", Pincode: "302001"},
	}
}

func demoRecords() []domain.CaseRecord {
	return []domain.CaseRecord{
		{CaseNumber: "DEMO-001", FirstName: "Arjun", LastName: "Malhotra", ContactNumber: "9123456780", Email: "arjun.malhotra@demo.com", Address: "12 Brigade Road", State: "Karnataka", District: "Bangalore", Pincode: "560025"},
		{CaseNumber: "DEMO-002", FirstName: "Kavya", LastName: "Iyer", ContactNumber: "9123456781", Email: "kavya.iyer@demo.com", Address: "45 Marina Beach Road", State: "Tamil Nadu", District: "Chennai", Pincode: "600013"},
		{CaseNumber: "DEMO-003", FirstName: "Rahul", LastName: "Kapoor", ContactNumber: "9123456782", Email: "rahul.kapoor@demo.com", Address: "78 Connaught Place", State: "Delhi", District: "New Delhi", Pincode: "110001"},
		{CaseNumber: "DEMO-004", FirstName: "Meera", LastName: "Joshi", ContactNumber: "9123456783", Email: "meera.joshi@demo.com", Address: "23 MG Road", State: "Maharashtra", District: "Pune", Pincode: "411001"},
		{CaseNumber: "DEMO-005", FirstName: "Karan", LastName: "Bhatia", ContactNumber: "9123456784", Email: "karan.bhatia@demo.com", Address: "56 Park Street", State: "West Bengal", District: "Kolkata", Pincode: "700016"},
		{CaseNumber: "DEMO-006", FirstName: "Sneha", LastName: "Agarwal", ContactNumber: "9123456785", Email: "sneha.agarwal@demo.com", Address: "89 Civil Lines", State: "Uttar Pradesh", District: "Agra", Pincode: "282002"},
		{CaseNumber: "DEMO-007", FirstName: "Nikhil", LastName: "Chopra", ContactNumber: "9123456786", Email: "nikhil.chopra@demo.com", Address: "34 Residency Road", State: "Madhya Pradesh", District: "Indore", Pincode: "452001"},
		{CaseNumber: "DEMO-008", FirstName: "Aarti", LastName: "Kulkarni", ContactNumber: "9123456787", Email: "aarti.kulkarni@demo.com", Address: "67 FC Road", State: "Maharashtra", District: "Pune", Pincode: "411004"},
		{CaseNumber: "DEMO-009", FirstName: "Varun", LastName: "Pillai", ContactNumber: "9123456788", Email: "varun.pillai@demo.com", Address: "90 MG Road", State: "Kerala", District: "Ernakulam", Pincode: "682016"},
		{CaseNumber: "DEMO-010", FirstName: "Ishita", LastName: "Bansal", ContactNumber: "9123456789", Email: "ishita.bansal@demo.com", Address: "12 Sector 17", State: "Haryana", District: "Gurgaon", Pincode: "122001"},
		{CaseNumber: "DEMO-011", FirstName: "Aditya", LastName: "Shah", ContactNumber: "9123456790", Email: "aditya.shah@demo.com", Address: "45 CG Road", State: "Gujarat", District: "Ahmedabad", Pincode: "380009"},
		{CaseNumber: "DEMO-012", FirstName: "Riya", LastName: "Rao", ContactNumber: "9123456791", Email: "riya.rao@demo.com", Address: "78 Banjara Hills", State: "Telangana", District: "Hyderabad", Pincode: "500034"},
		{CaseNumber: "DEMO-013", FirstName: "Siddharth", LastName: "Mishra", ContactNumber: "9123456792", Email: "siddharth.mishra@demo.com", Address: "23 Hazratganj", State: "Uttar Pradesh", District: "Lucknow", Pincode: "226001"},
		{CaseNumber: "DEMO-014", FirstName: "Tanvi", LastName: "Shetty", ContactNumber: "9123456793", Email: "tanvi.shetty@demo.com", Address: "56 MG Road", State: "Karnataka", District: "Mangalore", Pincode: "575001"},
		{CaseNumber: "DEMO-015", FirstName: "Abhishek", LastName: "Saxena", ContactNumber: "9123456794", Email: "abhishek.saxena@demo.com", Address: "89 MI Road", State: "Rajasthan", District: "Jaipur", Pincode: "302001"},
	}
}
