package middleware

import (
	"bytes"
	"crypto/sha512"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"

	"NFTAuctionEngine/src/pkg/errcode"
	"NFTAuctionEngine/src/pkg/xhttp"

	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/stores/kv"
)

const CacheApiPrefix = "apicache:"

type responseCache struct {
	Status int
	Header http.Header
	Data   []byte
}

// CacheApi serves repeated read requests from redis for expireSeconds.
// Only 200 envelopes are cached.
func CacheApi(store kv.Store, expireSeconds int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil {
			c.Next()
			return
		}

		var data xhttp.Response
		bodyLogWrite := &BodyLogWrite{ResponseWriter: c.Writer, body: bytes.NewBufferString("")}
		c.Writer = bodyLogWrite

		cacheKey := CreateKey(c)
		if cacheKey == "" {
			xhttp.Error(c, errcode.NewCustomErr("cache error:no cache"))
			c.Abort()
			return
		}
		cacheData, err := store.Get(cacheKey)
		if err == nil && cacheData != "" {
			cache := unserialize(cacheData)
			if cache != nil {
				bodyLogWrite.ResponseWriter.WriteHeader(cache.Status)
				for k, vals := range cache.Header {
					for _, v := range vals {
						bodyLogWrite.ResponseWriter.Header().Set(k, v)
					}
				}
				if err := json.Unmarshal(cache.Data, &data); err == nil {
					if data.Code == http.StatusOK {
						bodyLogWrite.ResponseWriter.Write(cache.Data)
						c.Abort()
						return
					}
				}
			}
		}
		c.Next()

		responseBody := bodyLogWrite.body.Bytes()
		if err := json.Unmarshal(responseBody, &data); err == nil {
			if data.Code == http.StatusOK {
				storeCache := responseCache{
					Header: bodyLogWrite.Header().Clone(),
					Status: bodyLogWrite.ResponseWriter.Status(),
					Data:   responseBody,
				}
				_ = store.Setex(cacheKey, serialize(storeCache), expireSeconds)
			}
		}
	}
}

// CreateKey derives the cache key from path, query and body, hashed when
// too long for a readable key.
func CreateKey(c *gin.Context) string {
	var buf bytes.Buffer
	reader := io.TeeReader(c.Request.Body, &buf)
	reqBody, _ := ioutil.ReadAll(reader)
	c.Request.Body = ioutil.NopCloser(&buf)

	path := c.Request.URL.Path
	query := c.Request.URL.RawQuery
	cacheKey := path + "," + query + string(reqBody)
	if len(cacheKey) > 128 {
		hash := sha512.New()
		hash.Write([]byte(cacheKey))
		cacheKey = string(hash.Sum([]byte("")))
		cacheKey = fmt.Sprintf("%x", cacheKey)
	}
	cacheKey = CacheApiPrefix + cacheKey
	return cacheKey
}

func serialize(cache responseCache) string {
	buf := new(bytes.Buffer)
	enc := gob.NewEncoder(buf)
	if err := enc.Encode(cache); err != nil {
		return ""
	}
	return buf.String()
}

func unserialize(data string) *responseCache {
	var g1 = responseCache{}
	dec := gob.NewDecoder(bytes.NewBuffer([]byte(data)))
	if err := dec.Decode(&g1); err != nil {
		return nil
	}
	return &g1
}
