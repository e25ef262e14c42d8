package domain

// WalletType distinguishes real-money wallets from virtual-currency ones.
type WalletType string

const (
	WalletTypeMonetary WalletType = "MONETARY"
	WalletTypeVirtual  WalletType = "VIRTUAL"
)

func (t WalletType) String() string { return string(t) }

func (t WalletType) IsValid() bool {
	switch t {
	case WalletTypeMonetary, WalletTypeVirtual:
		return true
	}
	return false
}

// RewardTransactionType returns the transaction type used when crediting a wallet of this type.
func (t WalletType) RewardTransactionType() TransactionType {
	if t == WalletTypeMonetary {
		return TransactionTypeMonetaryReward
	}
	return TransactionTypeVirtualReward
}

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	TransactionTypeChallengeBoost TransactionType = "CHALLENGE_BOOST"
	TransactionTypeVirtualReward  TransactionType = "VIRTUAL_REWARD"
	TransactionTypeMonetaryReward TransactionType = "MONETARY_REWARD"
)

func (t TransactionType) String() string { return string(t) }

func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeChallengeBoost, TransactionTypeVirtualReward, TransactionTypeMonetaryReward:
		return true
	}
	return false
}

// MovesBalance reports whether transactions of this type were applied to the wallet balance.
func (t TransactionType) MovesBalance() bool {
	return t == TransactionTypeVirtualReward || t == TransactionTypeMonetaryReward
}

// ActivityType classifies a user activity record.
type ActivityType string

const (
	ActivityTypePostChallenge  ActivityType = "POST_CHALLENGE"
	ActivityTypePostSubmission ActivityType = "POST_SUBMISSION"
	ActivityTypePostReply      ActivityType = "POST_REPLY"
	ActivityTypeEditChallenge  ActivityType = "EDIT_CHALLENGE"
	ActivityTypeEditSubmission ActivityType = "EDIT_SUBMISSION"
	ActivityTypeEditReply      ActivityType = "EDIT_REPLY"
)

func (t ActivityType) String() string { return string(t) }

func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityTypePostChallenge, ActivityTypePostSubmission, ActivityTypePostReply,
		ActivityTypeEditChallenge, ActivityTypeEditSubmission, ActivityTypeEditReply:
		return true
	}
	return false
}
