package repository

const (
	selectUser = `SELECT
		id,
		email,
		name,
		role,
		status,
		blood_group,
		district,
		upazila,
		avatar,
		created_at,
		updated_at
	FROM users`

	selectRequest = `SELECT
		id,
		requester_email,
		recipient_name,
		blood_group,
		district,
		upazila,
		hospital,
		address,
		donation_date,
		donation_time,
		message,
		status,
		donor_name,
		donor_email,
		requested_at,
		updated_at
	FROM donation_requests`

	selectFund = `SELECT
		id,
		transaction_id,
		amount,
		email,
		donor_name,
		avatar,
		funding_date
	FROM funds`

	selectCheckoutSession = `SELECT
		id,
		session_id,
		email,
		name,
		avatar,
		amount,
		status,
		created_at,
		updated_at
	FROM checkout_sessions`
)
