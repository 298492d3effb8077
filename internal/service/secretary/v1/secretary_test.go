package secretary

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SecretaryTestSuite struct {
	suite.Suite
	secretary *Secretary
}

func (suite *SecretaryTestSuite) SetupTest() {
	suite.secretary = NewSecretaryService("jds__63h3_7ds")
}

func TestSecretaryTestSuite(t *testing.T) {
	suite.Run(t, new(SecretaryTestSuite))
}

func (suite *SecretaryTestSuite) TestSignVerify() {
	token, err := suite.secretary.Sign("user1")
	suite.Require().NoError(err)
	userID, err := suite.secretary.Verify(token)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "user1", userID)
}

func (suite *SecretaryTestSuite) TestVerify() {
	other := NewSecretaryService("another secret")
	foreign, err := other.Sign("user1")
	suite.Require().NoError(err)

	noSubject, err := suite.secretary.Sign("")
	suite.Require().NoError(err)

	expired := NewSecretaryService("jds__63h3_7ds")
	expired.now = func() time.Time { return time.Now().Add(-2 * TokenTTL) }
	old, err := expired.Sign("user1")
	suite.Require().NoError(err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "user1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	suite.Require().NoError(err)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{name: "foreign signature", token: foreign, want: jwt.ErrTokenSignatureInvalid},
		{name: "empty subject", token: noSubject, want: ErrEmptySubject},
		{name: "expired", token: old, want: jwt.ErrTokenExpired},
		{name: "malformed", token: "not-a-token", want: jwt.ErrTokenMalformed},
		{name: "unsigned", token: none, want: jwt.ErrTokenUnverifiable},
	}
	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			userID, err := suite.secretary.Verify(tt.token)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, userID)
		})
	}
}

func (suite *SecretaryTestSuite) TestVerify_Leeway() {
	skewed := NewSecretaryService("jds__63h3_7ds")
	skewed.now = func() time.Time { return time.Now().Add(-TokenTTL - 10*time.Second) }
	token, err := skewed.Sign("user1")
	suite.Require().NoError(err)
	userID, err := suite.secretary.Verify(token)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "user1", userID)
}

func TestSecretary_NoSecret(t *testing.T) {
	sec := NewSecretaryService("")
	_, err := sec.Sign("user1")
	assert.ErrorIs(t, err, ErrNoSecret)
	token, err := NewSecretaryService("jds__63h3_7ds").Sign("user1")
	require.NoError(t, err)
	_, err = sec.Verify(token)
	assert.ErrorIs(t, err, ErrNoSecret)
}
