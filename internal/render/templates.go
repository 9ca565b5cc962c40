// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

// settingsTemplate produces the local settings module imported by the
// application's base settings at startup. The layout mirrors the
// environment-driven section of the base settings module: debug toggles,
// DATABASES, redis CACHES with the cache-backed session engine, the S3
// storage block with its STATIC_URL rewrite, admin contact and social auth
// keys.
const settingsTemplate = `# Generated by go-site-deploy. Do not edit; regenerated on every deploy.

DEBUG = {{pybool .Site.Debug}}
TEMPLATE_DEBUG = DEBUG
SHOW_DEBUG_TOOLBAR = DEBUG

ADMINS = (
    ('Shareabouts API Admin', {{py .Site.AdminEmail}}),
)
MANAGERS = ADMINS

DATABASES = {
    'default': {
        'ENGINE': 'django.contrib.gis.db.backends.postgis',
        'NAME': {{py .Database.Name}},
        'USER': {{py .Database.User}},
        'PASSWORD': {{py .Database.Password}},
        'HOST': {{py .Database.Host}},
        'PORT': '{{.Database.Port}}',
    }
}

CACHES = {
    "default": {
        "BACKEND": "redis_cache.cache.RedisCache",
        "LOCATION": "{{.Cache.Host}}:{{.Cache.Port}}:1",
        "OPTIONS": {
            "CLIENT_CLASS": "redis_cache.client.DefaultClient",
            "PASSWORD": {{py .Cache.Password}},
        }
    }
}

SESSION_ENGINE = "django.contrib.sessions.backends.cache"

AWS_ACCESS_KEY_ID = {{py .Storage.AccessKey}}
AWS_SECRET_ACCESS_KEY = {{py .Storage.SecretKey}}
AWS_STORAGE_BUCKET_NAME = {{py .Storage.Bucket}}
AWS_QUERYSTRING_AUTH = False
AWS_PRELOAD_METADATA = True

DEFAULT_FILE_STORAGE = 'storages.backends.s3boto.S3BotoStorage'
ATTACHMENT_STORAGE = DEFAULT_FILE_STORAGE
STATICFILES_STORAGE = DEFAULT_FILE_STORAGE
STATIC_URL = 'http://{{.Storage.Bucket}}.s3.amazonaws.com/'
STATIC_ROOT = {{py .Site.StaticRoot}}

SOCIAL_AUTH_TWITTER_KEY = {{py .Social.TwitterKey}}
SOCIAL_AUTH_TWITTER_SECRET = {{py .Social.TwitterSecret}}
SOCIAL_AUTH_FACEBOOK_KEY = {{py .Social.FacebookKey}}
SOCIAL_AUTH_FACEBOOK_SECRET = {{py .Social.FacebookSecret}}

CONSOLE_LOG_LEVEL = {{py .Site.ConsoleLogLevel}}
`

// nginxTemplate produces the server fragment included by the platform's
// nginx config: permissive CORS for the API and direct serving of collected
// static assets.
const nginxTemplate = `# Generated by go-site-deploy. Do not edit; regenerated on every deploy.

location /static/ {
    alias {{.Site.StaticRoot}}/;
    expires 7d;
    add_header 'Access-Control-Allow-Origin' '*';
}

location / {
    if ($request_method = 'OPTIONS') {
        add_header 'Access-Control-Allow-Origin' '*';
        add_header 'Access-Control-Allow-Methods' 'GET, POST, PUT, PATCH, DELETE, OPTIONS';
        add_header 'Access-Control-Allow-Headers' 'Content-Type, Origin, Accept, X-Requested-With, X-CSRFToken';
        add_header 'Access-Control-Max-Age' 1728000;
        add_header 'Content-Length' 0;
        return 204;
    }

    add_header 'Access-Control-Allow-Origin' '*';
    add_header 'Access-Control-Allow-Methods' 'GET, POST, PUT, PATCH, DELETE, OPTIONS';
    add_header 'Access-Control-Allow-Headers' 'Content-Type, Origin, Accept, X-Requested-With, X-CSRFToken';
}
`
