package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/account-service/internal/domain"
	"github.com/heartmarshall/account-service/internal/service/ledger"
)

var _ ledgerService = &ledgerServiceMock{}

type ledgerServiceMock struct {
	WalletByIDFunc                     func(ctx context.Context, callerID uuid.UUID, walletID uuid.UUID) (*domain.Wallet, error)
	ListWalletTransactionsFunc         func(ctx context.Context, callerID uuid.UUID, walletID uuid.UUID, req domain.PageRequest) (domain.Page[domain.Transaction], error)
	CreateWalletFunc                   func(ctx context.Context, callerID uuid.UUID, input ledger.CreateWalletInput) (*domain.Wallet, error)
	CreateWalletRollbackFunc           func(ctx context.Context, callerID uuid.UUID, walletID uuid.UUID) error
	CreateBoostTransactionFunc         func(ctx context.Context, callerID uuid.UUID, input ledger.AmountInput) (*domain.Transaction, error)
	CreateBoostTransactionRollbackFunc func(ctx context.Context, callerID uuid.UUID, transactionID uuid.UUID) error
	AddBalanceFunc                     func(ctx context.Context, callerID uuid.UUID, input ledger.AmountInput) (*domain.Transaction, error)
	AddBalanceRollbackFunc             func(ctx context.Context, callerID uuid.UUID, transactionID uuid.UUID) error
	AddActivityFunc                    func(ctx context.Context, callerID uuid.UUID, input ledger.AddActivityInput) (*domain.Activity, error)
	AddActivityRollbackFunc            func(ctx context.Context, callerID uuid.UUID, activityID uuid.UUID) error

	calls struct {
		WalletByID []struct {
			CallerID uuid.UUID
			WalletID uuid.UUID
		}
		ListWalletTransactions []struct {
			CallerID uuid.UUID
			WalletID uuid.UUID
			Req      domain.PageRequest
		}
		CreateWallet []struct {
			CallerID uuid.UUID
			Input    ledger.CreateWalletInput
		}
		CreateWalletRollback []struct {
			CallerID uuid.UUID
			WalletID uuid.UUID
		}
		CreateBoostTransaction []struct {
			CallerID uuid.UUID
			Input    ledger.AmountInput
		}
		CreateBoostTransactionRollback []struct {
			CallerID      uuid.UUID
			TransactionID uuid.UUID
		}
		AddBalance []struct {
			CallerID uuid.UUID
			Input    ledger.AmountInput
		}
		AddBalanceRollback []struct {
			CallerID      uuid.UUID
			TransactionID uuid.UUID
		}
		AddActivity []struct {
			CallerID uuid.UUID
			Input    ledger.AddActivityInput
		}
		AddActivityRollback []struct {
			CallerID   uuid.UUID
			ActivityID uuid.UUID
		}
	}
	lockWalletByID                     sync.RWMutex
	lockListWalletTransactions         sync.RWMutex
	lockCreateWallet                   sync.RWMutex
	lockCreateWalletRollback           sync.RWMutex
	lockCreateBoostTransaction         sync.RWMutex
	lockCreateBoostTransactionRollback sync.RWMutex
	lockAddBalance                     sync.RWMutex
	lockAddBalanceRollback             sync.RWMutex
	lockAddActivity                    sync.RWMutex
	lockAddActivityRollback            sync.RWMutex
}

func (mock *ledgerServiceMock) WalletByID(ctx context.Context, callerID uuid.UUID, walletID uuid.UUID) (*domain.Wallet, error) {
	if mock.WalletByIDFunc == nil {
		panic("ledgerServiceMock.WalletByIDFunc: method is nil but ledgerService.WalletByID was just called")
	}
	callInfo := struct {
		CallerID uuid.UUID
		WalletID uuid.UUID
	}{CallerID: callerID, WalletID: walletID}
	mock.lockWalletByID.Lock()
	mock.calls.WalletByID = append(mock.calls.WalletByID, callInfo)
	mock.lockWalletByID.Unlock()
	return mock.WalletByIDFunc(ctx, callerID, walletID)
}

func (mock *ledgerServiceMock) WalletByIDCalls() []struct {
	CallerID uuid.UUID
	WalletID uuid.UUID
} {
	mock.lockWalletByID.RLock()
	calls := mock.calls.WalletByID
	mock.lockWalletByID.RUnlock()
	return calls
}

func (mock *ledgerServiceMock) ListWalletTransactions(ctx context.Context, callerID uuid.UUID, walletID uuid.UUID, req domain.PageRequest) (domain.Page[domain.Transaction], error) {
	if mock.ListWalletTransactionsFunc == nil {
		panic("ledgerServiceMock.ListWalletTransactionsFunc: method is nil but ledgerService.ListWalletTransactions was just called")
	}
	callInfo := struct {
		CallerID uuid.UUID
		WalletID uuid.UUID
		Req      domain.PageRequest
	}{CallerID: callerID, WalletID: walletID, Req: req}
	mock.lockListWalletTransactions.Lock()
	mock.calls.ListWalletTransactions = append(mock.calls.ListWalletTransactions, callInfo)
	mock.lockListWalletTransactions.Unlock()
	return mock.ListWalletTransactionsFunc(ctx, callerID, walletID, req)
}

func (mock *ledgerServiceMock) ListWalletTransactionsCalls() []struct {
	CallerID uuid.UUID
	WalletID uuid.UUID
	Req      domain.PageRequest
} {
	mock.lockListWalletTransactions.RLock()
	calls := mock.calls.ListWalletTransactions
	mock.lockListWalletTransactions.RUnlock()
	return calls
}

func (mock *ledgerServiceMock) CreateWallet(ctx context.Context, callerID uuid.UUID, input ledger.CreateWalletInput) (*domain.Wallet, error) {
	if mock.CreateWalletFunc == nil {
		panic("ledgerServiceMock.CreateWalletFunc: method is nil but ledgerService.CreateWallet was just called")
	}
	callInfo := struct {
		CallerID uuid.UUID
		Input    ledger.CreateWalletInput
	}{CallerID: callerID, Input: input}
	mock.lockCreateWallet.Lock()
	mock.calls.CreateWallet = append(mock.calls.CreateWallet, callInfo)
	mock.lockCreateWallet.Unlock()
	return mock.CreateWalletFunc(ctx, callerID, input)
}

func (mock *ledgerServiceMock) CreateWalletCalls() []struct {
	CallerID uuid.UUID
	Input    ledger.CreateWalletInput
} {
	mock.lockCreateWallet.RLock()
	calls := mock.calls.CreateWallet
	mock.lockCreateWallet.RUnlock()
	return calls
}

func (mock *ledgerServiceMock) CreateWalletRollback(ctx context.Context, callerID uuid.UUID, walletID uuid.UUID) error {
	if mock.CreateWalletRollbackFunc == nil {
		panic("ledgerServiceMock.CreateWalletRollbackFunc: method is nil but ledgerService.CreateWalletRollback was just called")
	}
	callInfo := struct {
		CallerID uuid.UUID
		WalletID uuid.UUID
	}{CallerID: callerID, WalletID: walletID}
	mock.lockCreateWalletRollback.Lock()
	mock.calls.CreateWalletRollback = append(mock.calls.CreateWalletRollback, callInfo)
	mock.lockCreateWalletRollback.Unlock()
	return mock.CreateWalletRollbackFunc(ctx, callerID, walletID)
}

func (mock *ledgerServiceMock) CreateWalletRollbackCalls() []struct {
	CallerID uuid.UUID
	WalletID uuid.UUID
} {
	mock.lockCreateWalletRollback.RLock()
	calls := mock.calls.CreateWalletRollback
	mock.lockCreateWalletRollback.RUnlock()
	return calls
}

func (mock *ledgerServiceMock) CreateBoostTransaction(ctx context.Context, callerID uuid.UUID, input ledger.AmountInput) (*domain.Transaction, error) {
	if mock.CreateBoostTransactionFunc == nil {
		panic("ledgerServiceMock.CreateBoostTransactionFunc: method is nil but ledgerService.CreateBoostTransaction was just called")
	}
	callInfo := struct {
		CallerID uuid.UUID
		Input    ledger.AmountInput
	}{CallerID: callerID, Input: input}
	mock.lockCreateBoostTransaction.Lock()
	mock.calls.CreateBoostTransaction = append(mock.calls.CreateBoostTransaction, callInfo)
	mock.lockCreateBoostTransaction.Unlock()
	return mock.CreateBoostTransactionFunc(ctx, callerID, input)
}

func (mock *ledgerServiceMock) CreateBoostTransactionCalls() []struct {
	CallerID uuid.UUID
	Input    ledger.AmountInput
} {
	mock.lockCreateBoostTransaction.RLock()
	calls := mock.calls.CreateBoostTransaction
	mock.lockCreateBoostTransaction.RUnlock()
	return calls
}

func (mock *ledgerServiceMock) CreateBoostTransactionRollback(ctx context.Context, callerID uuid.UUID, transactionID uuid.UUID) error {
	if mock.CreateBoostTransactionRollbackFunc == nil {
		panic("ledgerServiceMock.CreateBoostTransactionRollbackFunc: method is nil but ledgerService.CreateBoostTransactionRollback was just called")
	}
	callInfo := struct {
		CallerID      uuid.UUID
		TransactionID uuid.UUID
	}{CallerID: callerID, TransactionID: transactionID}
	mock.lockCreateBoostTransactionRollback.Lock()
	mock.calls.CreateBoostTransactionRollback = append(mock.calls.CreateBoostTransactionRollback, callInfo)
	mock.lockCreateBoostTransactionRollback.Unlock()
	return mock.CreateBoostTransactionRollbackFunc(ctx, callerID, transactionID)
}

func (mock *ledgerServiceMock) CreateBoostTransactionRollbackCalls() []struct {
	CallerID      uuid.UUID
	TransactionID uuid.UUID
} {
	mock.lockCreateBoostTransactionRollback.RLock()
	calls := mock.calls.CreateBoostTransactionRollback
	mock.lockCreateBoostTransactionRollback.RUnlock()
	return calls
}

func (mock *ledgerServiceMock) AddBalance(ctx context.Context, callerID uuid.UUID, input ledger.AmountInput) (*domain.Transaction, error) {
	if mock.AddBalanceFunc == nil {
		panic("ledgerServiceMock.AddBalanceFunc: method is nil but ledgerService.AddBalance was just called")
	}
	callInfo := struct {
		CallerID uuid.UUID
		Input    ledger.AmountInput
	}{CallerID: callerID, Input: input}
	mock.lockAddBalance.Lock()
	mock.calls.AddBalance = append(mock.calls.AddBalance, callInfo)
	mock.lockAddBalance.Unlock()
	return mock.AddBalanceFunc(ctx, callerID, input)
}

func (mock *ledgerServiceMock) AddBalanceCalls() []struct {
	CallerID uuid.UUID
	Input    ledger.AmountInput
} {
	mock.lockAddBalance.RLock()
	calls := mock.calls.AddBalance
	mock.lockAddBalance.RUnlock()
	return calls
}

func (mock *ledgerServiceMock) AddBalanceRollback(ctx context.Context, callerID uuid.UUID, transactionID uuid.UUID) error {
	if mock.AddBalanceRollbackFunc == nil {
		panic("ledgerServiceMock.AddBalanceRollbackFunc: method is nil but ledgerService.AddBalanceRollback was just called")
	}
	callInfo := struct {
		CallerID      uuid.UUID
		TransactionID uuid.UUID
	}{CallerID: callerID, TransactionID: transactionID}
	mock.lockAddBalanceRollback.Lock()
	mock.calls.AddBalanceRollback = append(mock.calls.AddBalanceRollback, callInfo)
	mock.lockAddBalanceRollback.Unlock()
	return mock.AddBalanceRollbackFunc(ctx, callerID, transactionID)
}

func (mock *ledgerServiceMock) AddBalanceRollbackCalls() []struct {
	CallerID      uuid.UUID
	TransactionID uuid.UUID
} {
	mock.lockAddBalanceRollback.RLock()
	calls := mock.calls.AddBalanceRollback
	mock.lockAddBalanceRollback.RUnlock()
	return calls
}

func (mock *ledgerServiceMock) AddActivity(ctx context.Context, callerID uuid.UUID, input ledger.AddActivityInput) (*domain.Activity, error) {
	if mock.AddActivityFunc == nil {
		panic("ledgerServiceMock.AddActivityFunc: method is nil but ledgerService.AddActivity was just called")
	}
	callInfo := struct {
		CallerID uuid.UUID
		Input    ledger.AddActivityInput
	}{CallerID: callerID, Input: input}
	mock.lockAddActivity.Lock()
	mock.calls.AddActivity = append(mock.calls.AddActivity, callInfo)
	mock.lockAddActivity.Unlock()
	return mock.AddActivityFunc(ctx, callerID, input)
}

func (mock *ledgerServiceMock) AddActivityCalls() []struct {
	CallerID uuid.UUID
	Input    ledger.AddActivityInput
} {
	mock.lockAddActivity.RLock()
	calls := mock.calls.AddActivity
	mock.lockAddActivity.RUnlock()
	return calls
}

func (mock *ledgerServiceMock) AddActivityRollback(ctx context.Context, callerID uuid.UUID, activityID uuid.UUID) error {
	if mock.AddActivityRollbackFunc == nil {
		panic("ledgerServiceMock.AddActivityRollbackFunc: method is nil but ledgerService.AddActivityRollback was just called")
	}
	callInfo := struct {
		CallerID   uuid.UUID
		ActivityID uuid.UUID
	}{CallerID: callerID, ActivityID: activityID}
	mock.lockAddActivityRollback.Lock()
	mock.calls.AddActivityRollback = append(mock.calls.AddActivityRollback, callInfo)
	mock.lockAddActivityRollback.Unlock()
	return mock.AddActivityRollbackFunc(ctx, callerID, activityID)
}

func (mock *ledgerServiceMock) AddActivityRollbackCalls() []struct {
	CallerID   uuid.UUID
	ActivityID uuid.UUID
} {
	mock.lockAddActivityRollback.RLock()
	calls := mock.calls.AddActivityRollback
	mock.lockAddActivityRollback.RUnlock()
	return calls
}
