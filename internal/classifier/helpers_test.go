package classifier_test

import "strings"

// Document fixtures shared by the classifier tests.

func cleanBillText() string {
	return strings.Join([]string{
		"Patient Statement",
		"Amount Due $450.32",
		"Dr. Smith Family Clinic",
		"CPT 99214",
		"Date of Service 2024-03-01",
	}, "\n")
}

func cleanEOBText() string {
	return strings.Join([]string{
		"Acme Health Insurance",
		"This is not a bill",
		"Explanation of Benefits",
		"Member ID 123456",
		"Provider: Springfield Clinic",
		"Date of Service: 2024-03-01 Office visit",
		"Amount billed $300.00",
		"Plan Paid $120.00",
	}, "\n")
}

func disqualifiedText() string {
	return strings.Join([]string{
		"Construction estimate",
		"Contractor license #12345",
		"ISBN 978-0-00-000000-0",
		"Copyright 2020",
	}, "\n")
}

// scoredEOBText has no strong EOB phrase but out-scores the bill table on
// medium and weak EOB terms alone.
func scoredEOBText() string {
	return strings.Join([]string{
		"member id 555",
		"provider: city hospital",
		"procedure: knee surgery",
		"allowed amount 100",
		"plan paid 80",
		"insurance paid 0",
		"member responsibility 20",
		"what you owe 20",
		"claim number 9",
		"processed date 2024-01-01",
		"amount covered 80",
		"coinsurance 10",
		"copay applied 0",
		"deductible applied 0",
		"provider discount 5",
		"network discount 5",
	}, "\n")
}
