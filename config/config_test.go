package config

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/3ok/huunq/internal/bind"
	"github.com/3ok/huunq/trace"
)

func TestDefaults(t *testing.T) {
	c := New()
	require.Equal(t, "localhost", c.Host())
	require.Equal(t, 0, c.Port())
	require.Equal(t, time.Duration(0), c.Timeout())
	require.True(t, c.LargeMessages())
	require.True(t, c.Wait())
	require.False(t, c.TLS())
	require.False(t, c.Unix())
	require.False(t, c.NoContext())
	require.Nil(t, c.Lock())
	require.Nil(t, c.Dialer())
	require.Equal(t, ".s.sp", c.SQLEntryPoint())
	require.NotNil(t, c.Trace())
	require.NotNil(t, c.DriverTrace())
	require.NotNil(t, c.Clock())
	require.Equal(t, "tcp", c.Network())
	require.Empty(t, c.ParamStyle())
}

func TestOptions(t *testing.T) {
	lock := &sync.Mutex{}
	c := New(
		WithHost("q.example.com"),
		WithPort(5001),
		WithCredentials("user", "pass"),
		WithTimeout(2*time.Second),
		WithLargeMessages(false),
		WithWait(false),
		WithNoContext(true),
		WithLock(lock),
		WithSQLEntryPoint(".my.sql"),
		WithParamStyle(bind.QMark),
		nil,
	)
	require.Equal(t, "q.example.com", c.Host())
	require.Equal(t, 5001, c.Port())
	require.Equal(t, "user", c.Username())
	require.Equal(t, "pass", c.Password())
	require.Equal(t, 2*time.Second, c.Timeout())
	require.False(t, c.LargeMessages())
	require.False(t, c.Wait())
	require.True(t, c.NoContext())
	require.Same(t, lock, c.Lock())
	require.Equal(t, ".my.sql", c.SQLEntryPoint())
	require.Equal(t, bind.QMark, c.ParamStyle())
	require.Equal(t, "q.example.com:5001", c.Address())
}

func TestAddress(t *testing.T) {
	for _, tt := range []struct {
		name string
		opts []Option
		exp  string
	}{
		{
			name: "tcp",
			opts: []Option{WithPort(5001)},
			exp:  "localhost:5001",
		},
		{
			name: "ipv6",
			opts: []Option{WithHost("::1"), WithPort(5001)},
			exp:  "[::1]:5001",
		},
		{
			name: "unix",
			opts: []Option{WithUnix(true), WithPort(5001)},
			exp:  "/tmp/kx.5001",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.exp, New(tt.opts...).Address())
		})
	}
	require.Equal(t, "unix", New(WithUnix(true)).Network())
}

func TestTLSConfig(t *testing.T) {
	c := New(WithHost("q.example.com"), WithTLS(true))
	require.True(t, c.TLS())
	require.Equal(t, "q.example.com", c.TLSConfig().ServerName)

	custom := &tls.Config{ServerName: "other", MinVersion: tls.VersionTLS13}
	c = New(WithTLSConfig(custom))
	require.True(t, c.TLS())
	require.Equal(t, "other", c.TLSConfig().ServerName)
	require.Equal(t, uint16(tls.VersionTLS13), c.TLSConfig().MinVersion)
}

func TestWithCertificate(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	template := &x509.Certificate{
		SerialNumber:          big.NewInt(2024),
		Subject:               pkix.Name{Organization: []string{"q"}},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		IsCA:                  true,
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		BasicConstraintsValid: true,
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)
	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)

	for _, c := range []*Config{
		New(WithTLS(true), WithCertificate(cert)),
		New(WithTLSConfig(&tls.Config{MinVersion: tls.VersionTLS12}), WithCertificate(cert)),
	} {
		roots := c.TLSConfig().RootCAs
		require.NotNil(t, roots)
		_, err = cert.Verify(x509.VerifyOptions{Roots: roots})
		require.NoError(t, err)
	}
}

func TestWithTraceComposes(t *testing.T) {
	var calls []string
	c := New(
		WithTrace(trace.Connection{
			OnClose: func(trace.ConnectionCloseStartInfo) func(trace.ConnectionCloseDoneInfo) {
				calls = append(calls, "first")

				return nil
			},
		}),
		WithTrace(trace.Connection{
			OnClose: func(trace.ConnectionCloseStartInfo) func(trace.ConnectionCloseDoneInfo) {
				calls = append(calls, "second")

				return nil
			},
		}),
	)
	trace.ConnectionOnClose(c.Trace())(nil)
	require.Equal(t, []string{"first", "second"}, calls)

	ctx := context.Background()
	trace.DriverOnDial(c.DriverTrace(), &ctx, "tcp", c.Address())(6, nil)
}
