package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/curiodex/curio/curio/database/models"
	gomock "go.uber.org/mock/gomock"
)

// MockWishlistSource is a mock of WishlistSource interface.
type MockWishlistSource struct {
	ctrl     *gomock.Controller
	recorder *MockWishlistSourceMockRecorder
	isgomock struct{}
}

// MockWishlistSourceMockRecorder is the mock recorder for MockWishlistSource.
type MockWishlistSourceMockRecorder struct {
	mock *MockWishlistSource
}

// NewMockWishlistSource creates a new mock instance.
func NewMockWishlistSource(ctrl *gomock.Controller) *MockWishlistSource {
	mock := &MockWishlistSource{ctrl: ctrl}
	mock.recorder = &MockWishlistSourceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockWishlistSource) EXPECT() *MockWishlistSourceMockRecorder {
	return m.recorder
}

// WishlistedGameIDs mocks base method.
func (m *MockWishlistSource) WishlistedGameIDs(ctx context.Context, platform string) ([]int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WishlistedGameIDs", ctx, platform)
	ret0, _ := ret[0].([]int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// WishlistedGameIDs indicates an expected call of WishlistedGameIDs.
func (mr *MockWishlistSourceMockRecorder) WishlistedGameIDs(ctx, platform any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WishlistedGameIDs", reflect.TypeOf((*MockWishlistSource)(nil).WishlistedGameIDs), ctx, platform)
}

// MockMetadataProvider is a mock of MetadataProvider interface.
type MockMetadataProvider struct {
	ctrl     *gomock.Controller
	recorder *MockMetadataProviderMockRecorder
	isgomock struct{}
}

// MockMetadataProviderMockRecorder is the mock recorder for MockMetadataProvider.
type MockMetadataProviderMockRecorder struct {
	mock *MockMetadataProvider
}

// NewMockMetadataProvider creates a new mock instance.
func NewMockMetadataProvider(ctrl *gomock.Controller) *MockMetadataProvider {
	mock := &MockMetadataProvider{ctrl: ctrl}
	mock.recorder = &MockMetadataProviderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMetadataProvider) EXPECT() *MockMetadataProviderMockRecorder {
	return m.recorder
}

// EnsureGame mocks base method.
func (m *MockMetadataProvider) EnsureGame(ctx context.Context, remoteID int64) (*models.Game, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EnsureGame", ctx, remoteID)
	ret0, _ := ret[0].(*models.Game)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// EnsureGame indicates an expected call of EnsureGame.
func (mr *MockMetadataProviderMockRecorder) EnsureGame(ctx, remoteID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EnsureGame", reflect.TypeOf((*MockMetadataProvider)(nil).EnsureGame), ctx, remoteID)
}

// MockStoreMetadataStore is a mock of StoreMetadataStore interface.
type MockStoreMetadataStore struct {
	ctrl     *gomock.Controller
	recorder *MockStoreMetadataStoreMockRecorder
	isgomock struct{}
}

// MockStoreMetadataStoreMockRecorder is the mock recorder for MockStoreMetadataStore.
type MockStoreMetadataStoreMockRecorder struct {
	mock *MockStoreMetadataStore
}

// NewMockStoreMetadataStore creates a new mock instance.
func NewMockStoreMetadataStore(ctrl *gomock.Controller) *MockStoreMetadataStore {
	mock := &MockStoreMetadataStore{ctrl: ctrl}
	mock.recorder = &MockStoreMetadataStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStoreMetadataStore) EXPECT() *MockStoreMetadataStoreMockRecorder {
	return m.recorder
}

// Get mocks base method.
func (m *MockStoreMetadataStore) Get(ctx context.Context, gameRemoteID int64, platform, region string) (*models.GameStoreMetadata, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, gameRemoteID, platform, region)
	ret0, _ := ret[0].(*models.GameStoreMetadata)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockStoreMetadataStoreMockRecorder) Get(ctx, gameRemoteID, platform, region any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockStoreMetadataStore)(nil).Get), ctx, gameRemoteID, platform, region)
}

// Create mocks base method.
func (m *MockStoreMetadataStore) Create(ctx context.Context, meta *models.GameStoreMetadata) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, meta)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockStoreMetadataStoreMockRecorder) Create(ctx, meta any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockStoreMetadataStore)(nil).Create), ctx, meta)
}

// MockPriceSink is a mock of PriceSink interface.
type MockPriceSink struct {
	ctrl     *gomock.Controller
	recorder *MockPriceSinkMockRecorder
	isgomock struct{}
}

// MockPriceSinkMockRecorder is the mock recorder for MockPriceSink.
type MockPriceSinkMockRecorder struct {
	mock *MockPriceSink
}

// NewMockPriceSink creates a new mock instance.
func NewMockPriceSink(ctrl *gomock.Controller) *MockPriceSink {
	mock := &MockPriceSink{ctrl: ctrl}
	mock.recorder = &MockPriceSinkMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPriceSink) EXPECT() *MockPriceSinkMockRecorder {
	return m.recorder
}

// Append mocks base method.
func (m *MockPriceSink) Append(ctx context.Context, record *models.GamePriceHistory) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Append", ctx, record)
	ret0, _ := ret[0].(error)
	return ret0
}

// Append indicates an expected call of Append.
func (mr *MockPriceSinkMockRecorder) Append(ctx, record any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Append", reflect.TypeOf((*MockPriceSink)(nil).Append), ctx, record)
}
