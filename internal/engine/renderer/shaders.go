package renderer

const lineVertexSrc = `
#version 410 core

layout (location = 0) in vec2 aPos;

uniform mat4 uProjection;

void main() {
	gl_Position = uProjection * vec4(aPos, 0.0, 1.0);
}
`

const lineFragmentSrc = `
#version 410 core

uniform vec4 uColor;

out vec4 FragColor;

void main() {
	FragColor = uColor;
}
`

const postVertexSrc = `
#version 410 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;

out vec2 vUV;

void main() {
	gl_Position = vec4(aPos, 0.0, 1.0);
	vUV = aUV;
}
`

// One direction of a separable gaussian, then contrast around mid grey.
const postFragmentSrc = `
#version 410 core

in vec2 vUV;
out vec4 FragColor;

uniform sampler2D uTexture;
uniform vec2 uDirection;
uniform float uSigma;
uniform float uContrast;

void main() {
	vec4 sum = texture(uTexture, vUV);
	if (uSigma > 0.0) {
		int taps = int(min(ceil(uSigma * 3.0), 64.0));
		float norm = 1.0;
		for (int i = 1; i <= taps; i++) {
			float d = float(i);
			float w = exp(-0.5 * d * d / (uSigma * uSigma));
			sum += w * (texture(uTexture, vUV + uDirection * d) + texture(uTexture, vUV - uDirection * d));
			norm += 2.0 * w;
		}
		sum /= norm;
	}
	vec3 c = (sum.rgb - 0.5) * uContrast + 0.5;
	FragColor = vec4(clamp(c, 0.0, 1.0), sum.a);
}
`
