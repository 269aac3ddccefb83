package parameters

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"

	"param-host/core/document"
	"param-host/core/logger"
	"param-host/core/parameter"
	"param-host/core/plug"
	"param-host/core/reconcile"
	"param-host/core/storage"
	"param-host/feature/snapshot"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"

	// Scalar adapters register with the default registry.
	_ "param-host/feature/parameters/adapters"
)

var (
	// ErrNotOpen is returned before a document has been opened.
	ErrNotOpen = errors.New("no parameter document open")
	// ErrPlugNotFound is returned for a path with no value plug.
	ErrPlugNotFound = errors.New("plug not found")
	// ErrUnavailable is returned when an operation needs a backend that is not configured.
	ErrUnavailable = errors.New("backend not configured")
)

// Options configures a Service. Client and Snapshots are optional; operations
// that need them fail with ErrUnavailable. A nil Factory uses the default
// registry, Reconcile and the session logger.
type Options struct {
	Factory   *reconcile.Factory
	Reconcile reconcile.Config
	Loader    *document.Loader
	Client    storage.Client
	Bucket    string
	Snapshots *snapshot.Store
	Logger    *zap.Logger
	// Session names this host in snapshots and exports. Empty generates one.
	Session string
}

// Service hosts one parameter tree: it owns the host plug node, the parameter
// tree reconciled under it and the compound adapter bridging the two.
// All methods are safe for concurrent use; they are serialized on one mutex.
type Service struct {
	factory   *reconcile.Factory
	loader    *document.Loader
	client    storage.Client
	bucket    string
	snapshots *snapshot.Store
	logger    *zap.Logger
	session   string

	mu      sync.Mutex
	node    *plug.CompoundPlug
	params  *parameter.CompoundParameter
	adapter *reconcile.CompoundAdapter
	source  string
}

// NewService creates a service with an empty host node.
func NewService(opts Options) *Service {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Session == "" {
		opts.Session = uuid.NewString()
	}
	log := logger.WithSession(opts.Logger, opts.Session)
	if opts.Factory == nil {
		opts.Factory = reconcile.NewFactory(opts.Reconcile, log, nil)
	}
	return &Service{
		factory:   opts.Factory,
		loader:    opts.Loader,
		client:    opts.Client,
		bucket:    opts.Bucket,
		snapshots: opts.Snapshots,
		logger:    log,
		session:   opts.Session,
		node:      plug.NewCompound("host"),
	}
}

// Session returns the session name.
func (s *Service) Session() string {
	return s.session
}

// Source returns where the open document came from.
func (s *Service) Source() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source
}

// Open reconciles the host node against doc and pushes the document's values
// to the plugs. Opening again with another document is a resync that resets values;
// use Resync to keep them.
func (s *Service) Open(doc *document.Document, source string) error {
	params, err := doc.Build()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	adapter := reconcile.NewCompound(s.factory, params, s.node)
	if err := adapter.SetPlugValue(); err != nil {
		return err
	}
	s.install(params, adapter, source)
	s.logger.Info("Parameters opened", zap.String("source", source), zap.Int("parameters", params.Len()))
	return nil
}

// Resync reconciles the existing plugs against a new document. Plugs that
// survive keep their values, which are pushed into the new parameters; if the
// new parameters reject them, the document values win.
func (s *Service) Resync(doc *document.Document, source string) error {
	params, err := doc.Build()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	adapter := reconcile.NewCompound(s.factory, params, s.node)
	if err := adapter.SetParameterValue(); err != nil {
		s.logger.Warn("Plug values rejected by new document, resetting", zap.Error(err))
		if err := adapter.SetPlugValue(); err != nil {
			return err
		}
	}
	s.install(params, adapter, source)
	s.logger.Info("Parameters resynced", zap.String("source", source))
	return nil
}

// install makes adapter current. A renamed root leaves its old plug behind on
// the host node, so that plug is detached.
func (s *Service) install(params *parameter.CompoundParameter, adapter *reconcile.CompoundAdapter, source string) {
	if s.adapter != nil && s.adapter.Plug() != adapter.Plug() {
		_ = s.node.RemoveChild(s.adapter.Plug())
	}
	s.params, s.adapter, s.source = params, adapter, source
}

// Load fetches a document from the bucket (or the filesystem without a loader).
func (s *Service) Load(ctx context.Context, source string) (*document.Document, error) {
	if s.loader == nil {
		return document.LoadFile(source)
	}
	return s.loader.Load(ctx, source)
}

// Values returns the current parameter values.
func (s *Service) Values() (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.params == nil {
		return nil, ErrNotOpen
	}
	return document.Values(s.params), nil
}

// SetValues applies nested parameter values and pushes them to the plugs.
func (s *Service) SetValues(values map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.params == nil {
		return ErrNotOpen
	}
	applyErr := document.ApplyValues(s.params, values)
	if err := s.adapter.SetPlugValue(); err != nil {
		return err
	}
	return applyErr
}

// Refresh pushes the parameter values to the plugs.
func (s *Service) Refresh() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.adapter == nil {
		return ErrNotOpen
	}
	return s.adapter.SetPlugValue()
}

// SetPlug sets the value plug at the dotted path below the parameters plug, then
// pushes plug values to the parameters. A value the parameter rejects is
// rolled back on the plug.
func (s *Service) SetPlug(path string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.adapter == nil {
		return ErrNotOpen
	}

	holder, ok := s.adapter.CompoundPlug().Descendant(path).(plug.ValueHolder)
	if !ok {
		return fmt.Errorf("%w: %s", ErrPlugNotFound, path)
	}
	if err := holder.SetAny(value); err != nil {
		return err
	}
	if err := s.adapter.SetParameterValue(); err != nil {
		if rollback := s.adapter.SetPlugValue(); rollback != nil {
			s.logger.Error("Plug rollback failed", zap.Error(rollback))
		}
		return err
	}
	return nil
}

// PlugNode is the serializable form of a plug subtree.
type PlugNode struct {
	Name     string     `json:"name"`
	Type     string     `json:"type"`
	Value    any        `json:"value,omitempty"`
	Children []PlugNode `json:"children,omitempty"`
}

// Plugs returns the plug tree under the host node.
func (s *Service) Plugs() PlugNode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return describe(s.node)
}

func describe(p plug.Plug) PlugNode {
	n := PlugNode{Name: p.Name(), Type: p.TypeName()}
	switch p := p.(type) {
	case *plug.CompoundPlug:
		for _, child := range p.Children() {
			n.Children = append(n.Children, describe(child))
		}
	case plug.ValueHolder:
		n.Value = p.Any()
	}
	return n
}

// ExcludeKey returns the user data key that opts parameters out of plugs.
func (s *Service) ExcludeKey() string {
	return s.factory.Config().ExcludeKey
}

// WithView calls fn with the parameter tree's read-only adapter view while
// holding the session lock.
func (s *Service) WithView(fn func(reconcile.View)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.adapter == nil {
		return ErrNotOpen
	}
	fn(s.adapter.View())
	return nil
}

// Snapshot saves the plug values.
func (s *Service) Snapshot(ctx context.Context) (int, error) {
	if s.snapshots == nil {
		return 0, fmt.Errorf("%w: database", ErrUnavailable)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.adapter == nil {
		return 0, ErrNotOpen
	}
	return s.snapshots.Save(ctx, s.session, s.adapter.CompoundPlug())
}

// Restore applies the saved plug values and pushes them to the parameters.
func (s *Service) Restore(ctx context.Context) (snapshot.Result, error) {
	if s.snapshots == nil {
		return snapshot.Result{}, fmt.Errorf("%w: database", ErrUnavailable)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.adapter == nil {
		return snapshot.Result{}, ErrNotOpen
	}
	res, err := s.snapshots.Restore(ctx, s.session, s.adapter.CompoundPlug())
	if err != nil {
		return res, err
	}
	if err := s.adapter.SetParameterValue(); err != nil {
		return res, err
	}
	return res, nil
}

// Export writes the parameter values to exports/<session>.<format> in the bucket
// and returns the object key.
func (s *Service) Export(ctx context.Context, format document.Format) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("%w: storage", ErrUnavailable)
	}
	values, err := s.Values()
	if err != nil {
		return "", err
	}
	data, err := document.Marshal(values, format)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("exports/%s.%s", s.session, format)
	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType(format),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	s.logger.Info("Values exported", zap.String("key", key))
	return key, nil
}

func contentType(f document.Format) string {
	switch f {
	case document.FormatJSON:
		return "application/json"
	case document.FormatYAML:
		return "application/yaml"
	case document.FormatTOML:
		return "application/toml"
	default:
		return "application/octet-stream"
	}
}

// Adapters lists the parameter types the factory can adapt.
func (s *Service) Adapters() []string {
	return s.factory.Registry().Types()
}
